package types

import "testing"

/*
   Sinks - обязательны.
   Нужны, чтобы компилятор не выкинул вычисления.
*/

var (
	sinkID   EntityID
	sinkU8   uint8
	sinkU16  uint16
	sinkU32  uint32
	sinkBool bool
)

//go:noinline
func packEntityIDNoInline(squad, kind uint8, gen uint16, index uint32) EntityID {
	return PackEntityID(squad, kind, gen, index)
}

//go:noinline
func entityIDSquadNoInline(id EntityID) uint8 {
	return id.Squad()
}

//go:noinline
func entityIDKindNoInline(id EntityID) uint8 {
	return id.Kind()
}

//go:noinline
func entityIDGenNoInline(id EntityID) uint16 {
	return id.Generation()
}

//go:noinline
func entityIDIndexNoInline(id EntityID) uint32 {
	return id.Index()
}

func BenchmarkPackEntityID(b *testing.B) {
	var id EntityID
	for i := 0; i < b.N; i++ {
		id = packEntityIDNoInline(1, 2, uint16(i), uint32(i))
	}
	sinkID = id
}

func BenchmarkEntityID_Getters(b *testing.B) {
	id := packEntityIDNoInline(1, 2, 3, 4)

	b.Run("Squad", func(b *testing.B) {
		var v uint8
		for i := 0; i < b.N; i++ {
			v = entityIDSquadNoInline(id)
		}
		sinkU8 = v
	})

	b.Run("Kind", func(b *testing.B) {
		var v uint8
		for i := 0; i < b.N; i++ {
			v = entityIDKindNoInline(id)
		}
		sinkU8 = v
	})

	b.Run("Gen", func(b *testing.B) {
		var v uint16
		for i := 0; i < b.N; i++ {
			v = entityIDGenNoInline(id)
		}
		sinkU16 = v
	})

	b.Run("Index", func(b *testing.B) {
		var v uint32
		for i := 0; i < b.N; i++ {
			v = entityIDIndexNoInline(id)
		}
		sinkU32 = v
	})
}

// Сравнение: поиск по индексу слота против поиска в map по полному id.
func BenchmarkEntityID_Lookup(b *testing.B) {
	const n = 1024
	slots := make([]EntityID, n)
	byID := make(map[EntityID]int, n)
	for i := 0; i < n; i++ {
		id := PackEntityID(uint8(i%8+1), 2, 0, uint32(i))
		slots[i] = id
		byID[id] = i
	}

	b.Run("Slot", func(b *testing.B) {
		var ok bool
		for i := 0; i < b.N; i++ {
			id := slots[i%n]
			ok = slots[id.Index()] == id
		}
		sinkBool = ok
	})

	b.Run("Map", func(b *testing.B) {
		var ok bool
		for i := 0; i < b.N; i++ {
			_, ok = byID[slots[i%n]]
		}
		sinkBool = ok
	})
}
