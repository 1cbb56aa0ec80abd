package types

import (
	"fmt"
	"strconv"
)

// EntityID - 64-битный идентификатор агента.
//
// EntityID является value-type: его дёшево копировать, сравнивать и
// использовать как ключ map. Агенты всегда адресуются по EntityID,
// никогда по указателю, поэтому удалённый агент не оставляет висячих ссылок.
//
// Формат битов (от старших к младшим):
//
//	[ Squad (8) | Kind (8) | Generation (16) | Index (32) ]
//
// Где:
//   - Squad - номер отряда (0 - вне отряда, например игрок)
//   - Kind - вид агента (enums.AgentKind)
//   - Generation - версия слота в таблице агентов (защита от устаревших ссылок)
//   - Index - индекс слота в таблице агентов
type EntityID uint64

// NilEntityID - нулевой идентификатор.
//
// Используется в клетках сетки как "никого нет" и как аналог nil
// для ещё не инициализированных ссылок.
const NilEntityID EntityID = 0

// Конфигурация битов EntityID.
const (
	// bitsIndex - количество бит под индекс слота.
	bitsIndex = 32

	// bitsGen - количество бит под поколение слота.
	// Поколение растёт при каждом освобождении слота.
	bitsGen = 16

	// bitsKind - количество бит под вид агента.
	bitsKind = 8

	// bitsSquad - количество бит под номер отряда.
	bitsSquad = 8

	// Сдвиги битов
	shiftGen   = bitsIndex
	shiftKind  = bitsIndex + bitsGen
	shiftSquad = bitsIndex + bitsGen + bitsKind

	// Маски для извлечения значений
	maskIndex = (1 << bitsIndex) - 1
	maskGen   = (1 << bitsGen) - 1
	maskKind  = (1 << bitsKind) - 1
	maskSquad = (1 << bitsSquad) - 1
)

// PackEntityID собирает EntityID из составных частей.
//
// Функция не проверяет диапазоны: значения, не влезающие в поле,
// молча обрезаются маской.
func PackEntityID(
	squad uint8,
	kind uint8,
	gen uint16,
	index uint32,
) EntityID {
	return EntityID(
		(uint64(squad) << shiftSquad) |
			(uint64(kind) << shiftKind) |
			(uint64(gen) << shiftGen) |
			uint64(index),
	)
}

// Index возвращает индекс слота в таблице агентов.
func (id EntityID) Index() uint32 {
	return uint32(id & maskIndex)
}

// Generation возвращает поколение слота.
func (id EntityID) Generation() uint16 {
	return uint16((id >> shiftGen) & maskGen)
}

// Kind возвращает вид агента.
func (id EntityID) Kind() uint8 {
	return uint8((id >> shiftKind) & maskKind)
}

// Squad возвращает номер отряда агента.
func (id EntityID) Squad() uint8 {
	return uint8((id >> shiftSquad) & maskSquad)
}

// IsNil проверяет, является ли идентификатор нулевым.
func (id EntityID) IsNil() bool {
	return id == NilEntityID
}

// SameSquad проверяет, что оба агента состоят в одном (ненулевом) отряде.
func (id EntityID) SameSquad(other EntityID) bool {
	return id.Squad() != 0 && id.Squad() == other.Squad()
}

// String возвращает человекочитаемое представление для логов.
func (id EntityID) String() string {
	if id.IsNil() {
		return "<nil>"
	}

	return fmt.Sprintf(
		"[squad=%d kind=%d gen=%d idx=%d]",
		id.Squad(),
		id.Kind(),
		id.Generation(),
		id.Index(),
	)
}

// MarshalJSON сериализует EntityID в JSON как строку.
//
// Снапшоты мира уходят во внешний слой отображения, который может
// не поддерживать uint64 без потери точности.
func (id EntityID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + strconv.FormatUint(uint64(id), 10) + `"`), nil
}

// UnmarshalJSON десериализует EntityID из JSON.
//
// Поддерживаются как строковое, так и числовое представление.
func (id *EntityID) UnmarshalJSON(data []byte) error {
	s := string(data)

	if len(s) > 1 && s[0] == '"' {
		s = s[1 : len(s)-1]
	}

	if s == "" {
		*id = NilEntityID
		return nil
	}

	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return err
	}

	*id = EntityID(v)
	return nil
}
