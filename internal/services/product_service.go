package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"shop-backend/internal/domain"
	"shop-backend/internal/repository"

	"github.com/go-redis/redis/v8"
	"golang.org/x/sync/errgroup"
)

const productCacheTTL = time.Minute

func productCacheKey(id uint64) string {
	return fmt.Sprintf("product:%d", id)
}

type ProductService struct {
	products    repository.ProductRepository
	redisClient *redis.Client
}

func NewProductService(products repository.ProductRepository) *ProductService {
	return &ProductService{products: products}
}

func (s *ProductService) SetRedisClient(client *redis.Client) {
	s.redisClient = client
}

// Get serves single-product reads through a TTL'd redis cache. Cache misses
// and unmarshalable entries fall through to the store.
func (s *ProductService) Get(ctx context.Context, id uint64) (*domain.Product, error) {
	key := productCacheKey(id)

	if s.redisClient != nil {
		cached, err := s.redisClient.Get(ctx, key).Result()
		if err == nil {
			var p domain.Product
			if err := json.Unmarshal([]byte(cached), &p); err == nil {
				return &p, nil
			}
		}
	}

	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if s.redisClient != nil {
		if data, err := json.Marshal(p); err == nil {
			s.redisClient.Set(ctx, key, data, productCacheTTL)
		}
	}
	return p, nil
}

func (s *ProductService) List(ctx context.Context) ([]domain.Product, error) {
	return s.products.FindAll(ctx)
}

func (s *ProductService) Create(ctx context.Context, product *domain.Product) error {
	return s.products.Create(ctx, product)
}

func (s *ProductService) Update(ctx context.Context, product *domain.Product) error {
	if err := s.products.Update(ctx, product); err != nil {
		return err
	}
	s.invalidate(ctx, product.ID)
	return nil
}

func (s *ProductService) Delete(ctx context.Context, id uint64) error {
	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// WarmupCache prefetches the given products concurrently at boot. Individual
// failures are logged and skipped; warm-up never takes the process down.
func (s *ProductService) WarmupCache(ctx context.Context, ids []uint64) error {
	if s.redisClient == nil {
		return nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			p, err := s.products.FindByID(ctx, id)
			if err != nil {
				log.Printf("cache warmup skipped product %d: %v", id, err)
				return nil
			}
			if data, err := json.Marshal(p); err == nil {
				s.redisClient.Set(ctx, productCacheKey(id), data, 5*time.Minute)
			}
			return nil
		})
	}
	return g.Wait()
}

func (s *ProductService) invalidate(ctx context.Context, id uint64) {
	if s.redisClient != nil {
		s.redisClient.Del(ctx, productCacheKey(id))
	}
}
