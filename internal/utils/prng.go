// internal/utils/prng.go
package utils

import "math/rand"

// PRNGService — обертка над генератором случайных чисел Go,
// которая дает предсказуемый (seeded) рандом во всей игре.
// Каждая колода владеет своим экземпляром, поэтому один и тот же сид
// всегда дает один и тот же порядок карт.
type PRNGService struct {
	rng *rand.Rand
}

// NewPRNGService создает новый экземпляр сервиса с указанным сидом.
func NewPRNGService(seed int64) *PRNGService {
	return &PRNGService{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Intn возвращает случайное целое число в диапазоне [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// Shuffle — тасование Фишера-Йетса: идем с конца и меняем элемент
// со случайным из еще не перемешанной части.
func (s *PRNGService) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.rng.Intn(i + 1)
		swap(i, j)
	}
}
