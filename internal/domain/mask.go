package domain

import (
	"bytes"
	"math"
	"strconv"
	"strings"
)

// maskBits - количество бит в маске интересов/пожеланий
const maskBits = 32

// Interest - номер бита категории интереса
type Interest uint8

// InterestCycling - интерес "велосипед", переключает режим маршрута на cycling
const InterestCycling Interest = 3

// Раскладка битов маски пожеланий
const (
	WishPriceMask    WishMask = 0b11                      // биты 0-1: ценовой уровень (0-3)
	WishReservedMask WishMask = 1<<2 | 1<<3 | 1<<4 | 1<<5 // не участвуют в фильтрации
	WishPlaceMask    WishMask = 1<<6 | 1<<7               // пара флагов placeWish
	WishOVZMask      WishMask = 1 << 8                    // флаг ovzWish
)

// InterestMask - набор категорий интересов в виде 32-битной маски
type InterestMask uint32

// WishMask - набор пожеланий: ценовой уровень, флаги placeWish и ovzWish
type WishMask uint32

// DecodeBits возвращает номера установленных битов в порядке возрастания
func DecodeBits(mask uint32) []int {
	result := make([]int, 0, maskBits)
	for i := 0; i < maskBits; i++ {
		if mask&(1<<uint(i)) != 0 {
			result = append(result, i)
		}
	}
	return result
}

// MaskOf собирает маску из номеров битов. Биты вне 0..31 игнорируются.
func MaskOf(bits ...int) uint32 {
	var mask uint32
	for _, b := range bits {
		if b >= 0 && b < maskBits {
			mask |= 1 << uint(b)
		}
	}
	return mask
}

// Bits возвращает установленные категории
func (m InterestMask) Bits() []int {
	return DecodeBits(uint32(m))
}

// Has проверяет наличие категории
func (m InterestMask) Has(i Interest) bool {
	return i < maskBits && m&(1<<i) != 0
}

// Intersects - есть ли хотя бы одна общая категория
func (m InterestMask) Intersects(other InterestMask) bool {
	return m&other != 0
}

// UnmarshalJSON принимает любое JSON-число или строку, null трактуется как 0
func (m *InterestMask) UnmarshalJSON(data []byte) error {
	*m = InterestMask(parseJSONMask(data))
	return nil
}

// Bits возвращает установленные биты пожеланий
func (w WishMask) Bits() []int {
	return DecodeBits(uint32(w))
}

// Query очищает зарезервированные биты 2-5 клиентского запроса
func (w WishMask) Query() WishMask {
	return w &^ WishReservedMask
}

// PriceTier возвращает ценовой уровень 0..3
func (w WishMask) PriceTier() uint8 {
	return uint8(w & WishPriceMask)
}

// PlaceFlags возвращает биты 6 и 7 на своих позициях
func (w WishMask) PlaceFlags() WishMask {
	return w & WishPlaceMask
}

// OVZ сообщает, установлен ли флаг ovzWish
func (w WishMask) OVZ() bool {
	return w&WishOVZMask != 0
}

// UnmarshalJSON принимает любое JSON-число или строку, null трактуется как 0
func (w *WishMask) UnmarshalJSON(data []byte) error {
	*w = WishMask(parseJSONMask(data))
	return nil
}

func parseJSONMask(data []byte) uint32 {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return 0
		}
		return ParseMask(unquoted)
	}
	return ParseMask(string(data))
}

// ParseMask приводит значение параметра запроса к 32-битной маске.
// Десятичные, шестнадцатеричные (0x), дробные и отрицательные числа
// допустимы, сохраняются младшие 32 бита. Всё, что не является числом, даёт 0.
func ParseMask(s string) uint32 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if len(s) > 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		u, err := strconv.ParseUint(s[2:], 16, 64)
		if err != nil {
			return 0
		}
		return uint32(u)
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return uint32(i)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return toUint32(f)
}

// toUint32 - усечение к нулю и остаток по модулю 2^32
func toUint32(f float64) uint32 {
	f = math.Trunc(f)
	m := math.Mod(f, 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return uint32(m)
}
