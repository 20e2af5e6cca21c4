package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rafaelleal24/stock-ledger/internal/core/domain"
	"github.com/rafaelleal24/stock-ledger/internal/core/dto"
	"github.com/rafaelleal24/stock-ledger/internal/core/logger"
	"github.com/rafaelleal24/stock-ledger/internal/core/port"
)

const (
	productCacheTTL = 30 * time.Second
	searchMaxSKUs   = 10
)

type ProductService struct {
	productRepository port.ProductPort
	productCache      port.CachePort[domain.Product]
}

func NewProductService(productRepository port.ProductPort, productCache port.CachePort[domain.Product]) *ProductService {
	return &ProductService{
		productRepository: productRepository,
		productCache:      productCache,
	}
}

func (s *ProductService) getCacheKey(productID domain.ID) string {
	return fmt.Sprintf("product:%s", productID)
}

func (s *ProductService) CreateProduct(ctx context.Context, request *dto.CreateProductRequest) (*domain.Product, error) {
	product := domain.NewProduct(request.SKU, request.Name, domain.NewAmountFromCents(request.Price), request.Stock)

	if err := s.productRepository.Create(ctx, product); err != nil {
		logger.Error(ctx, "product: create failed", err, map[string]any{
			"sku":   request.SKU,
			"name":  request.Name,
			"price": request.Price,
			"stock": request.Stock,
		})
		return nil, err
	}

	logger.Info(ctx, "Product created", map[string]any{"product_id": product.ID, "sku": product.SKU})
	return product, nil
}

// GetByID serves a cached snapshot when one exists. The snapshot may trail
// concurrent ledger mutations by up to the cache TTL; mutations evict it.
func (s *ProductService) GetByID(ctx context.Context, id domain.ID) (*domain.Product, error) {
	cached, err := s.productCache.Get(ctx, s.getCacheKey(id))
	if err != nil {
		logger.Error(ctx, "cache: get product failed", err, map[string]any{
			"product_id": id,
		})
	}
	if cached != nil {
		return cached, nil
	}

	product, err := s.productRepository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.productCache.Set(ctx, s.getCacheKey(id), product, productCacheTTL); err != nil {
		logger.Error(ctx, "cache: set product failed", err, map[string]any{
			"product_id": id,
		})
	}

	return product, nil
}

func (s *ProductService) GetBySKU(ctx context.Context, sku string) (*domain.Product, error) {
	return s.productRepository.GetBySKU(ctx, sku)
}

func (s *ProductService) GetAll(ctx context.Context) ([]*domain.Product, error) {
	return s.productRepository.GetAll(ctx)
}

func (s *ProductService) SearchSKUs(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return []string{}, nil
	}
	return s.productRepository.SearchSKUs(ctx, query, searchMaxSKUs)
}

// Evict drops the cached snapshot for a product. Called after ledger
// mutations so reads converge on the committed stock value.
func (s *ProductService) Evict(ctx context.Context, id domain.ID) {
	if err := s.productCache.Del(ctx, s.getCacheKey(id)); err != nil {
		logger.Error(ctx, "cache: evict product failed", err, map[string]any{
			"product_id": id,
		})
	}
}
