package service

import (
	"math"
	"math/rand/v2"

	"DevOpsFacts/backend/go/internal/facts_service/store"
	"DevOpsFacts/backend/go/internal/models"
)

// Float64Source 返回 [0,1) 区间内均匀分布的浮点数。
type Float64Source func() float64

// Service 从事实库中随机挑选事实。
type Service struct {
	store  *store.FactStore
	random Float64Source
}

// Option 用于配置 Service。
type Option func(*Service)

// WithSource 替换随机数来源，主要用于测试。
func WithSource(src Float64Source) Option {
	return func(s *Service) {
		s.random = src
	}
}

// NewService 创建一个新的 Service，默认使用 math/rand/v2 的全局随机源，
// 该随机源可以被并发调用。
func NewService(s *store.FactStore, opts ...Option) *Service {
	svc := &Service{store: s, random: rand.Float64}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// RandomIndex 取 floor(r * n) 作为下标，r 来自随机源。
func (s *Service) RandomIndex() int {
	n := s.store.Len()
	i := int(math.Floor(s.random() * float64(n)))
	// 随机源行为不规范时（返回 1 或负数）将下标收回到合法范围。
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

// RandomFact 返回一条均匀随机选中的事实。
func (s *Service) RandomFact() models.Fact {
	fact, _ := s.store.At(s.RandomIndex())
	return fact
}
