package store

import (
	"errors"

	"DevOpsFacts/backend/go/internal/models"
)

// ErrEmptyStore 表示试图用空列表创建事实库。
var ErrEmptyStore = errors.New("fact store must contain at least one fact")

// FactStore 是一个只读的事实列表，创建后内容和顺序都不再改变，
// 因此可以被多个请求并发读取而无需加锁。
type FactStore struct {
	facts []models.Fact
}

// NewStore 复制传入的事实列表并创建 FactStore。
func NewStore(facts []models.Fact) (*FactStore, error) {
	if len(facts) == 0 {
		return nil, ErrEmptyStore
	}
	owned := make([]models.Fact, len(facts))
	copy(owned, facts)
	return &FactStore{facts: owned}, nil
}

// NewDefaultStore 使用内置的十条 DevOps 事实创建 FactStore。
func NewDefaultStore() *FactStore {
	s, _ := NewStore(models.DevOpsFacts())
	return s
}

// Len 返回事实数量。
func (s *FactStore) Len() int {
	return len(s.facts)
}

// At 返回下标 i 处的事实；越界时第二个返回值为 false。
func (s *FactStore) At(i int) (models.Fact, bool) {
	if i < 0 || i >= len(s.facts) {
		return "", false
	}
	return s.facts[i], true
}

// All 返回所有事实的副本。
func (s *FactStore) All() []models.Fact {
	out := make([]models.Fact, len(s.facts))
	copy(out, s.facts)
	return out
}

// Contains 判断 f 是否在事实库中。
func (s *FactStore) Contains(f models.Fact) bool {
	for _, fact := range s.facts {
		if fact == f {
			return true
		}
	}
	return false
}
