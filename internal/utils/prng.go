// internal/utils/prng.go
package utils

import "go-polarity-shooter/internal/defs"

const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModMask    = 0x7fffffff
)

// PRNGService - детерминированный линейный конгруэнтный генератор.
// Все случайные решения симуляции идут через него, поэтому при одинаковом
// сиде и одинаковом вводе игра воспроизводится кадр в кадр.
type PRNGService struct {
	seed     int64
	original int64
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
func NewPRNGService(seed int64) *PRNGService {
	seed &= lcgModMask
	return &PRNGService{seed: seed, original: seed}
}

// Next возвращает число в диапазоне [0, 1].
// Состояние 0x7fffffff даёт ровно 1.0, остальные значения строго меньше.
func (s *PRNGService) Next() float64 {
	s.seed = (s.seed*lcgMultiplier + lcgIncrement) & lcgModMask
	return float64(s.seed) / lcgModMask
}

// NextInt возвращает целое в диапазоне [min, max] включительно.
func (s *PRNGService) NextInt(min, max int) int {
	if max < min {
		min, max = max, min
	}
	n := int(s.Next()*float64(max-min+1)) + min
	if n > max {
		n = max
	}
	return n
}

// NextFloat возвращает число в диапазоне [min, max).
func (s *PRNGService) NextFloat(min, max float64) float64 {
	return s.Next()*(max-min) + min
}

// Chance возвращает true с вероятностью p.
func (s *PRNGService) Chance(p float64) bool {
	return s.Next() < p
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return s.NextInt(0, n-1)
}

// Reset возвращает генератор к исходному сиду.
func (s *PRNGService) Reset() {
	s.seed = s.original
}

// SetSeed задаёт новый сид, он же становится исходным для Reset.
func (s *PRNGService) SetSeed(seed int64) {
	seed &= lcgModMask
	s.seed = seed
	s.original = seed
}

// Seed возвращает текущее состояние генератора.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// OriginalSeed возвращает сид, с которого генератор стартовал.
func (s *PRNGService) OriginalSeed() int64 {
	return s.original
}

// Choose выбирает элемент среди items, пустой срез даёт нулевое значение.
func Choose[T any](s *PRNGService, items []T) T {
	var zero T
	if len(items) == 0 {
		return zero
	}
	return items[s.NextInt(0, len(items)-1)]
}

// ChooseWeighted выполняет взвешенный случайный выбор размера врага.
// Он суммирует все веса, выбирает случайное число в этом диапазоне,
// а затем находит элемент, которому соответствует это число.
func (s *PRNGService) ChooseWeighted(entries []defs.SizeWeight) defs.SizeWeight {
	if len(entries) == 0 {
		return defs.SizeWeight{}
	}

	total := 0.0
	for _, entry := range entries {
		total += entry.Weight
	}
	if total <= 0 {
		return entries[0]
	}

	r := s.Next() * total
	upto := 0.0
	for _, entry := range entries {
		if r < upto+entry.Weight {
			return entry
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1]
}
