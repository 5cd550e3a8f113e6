// Package catalogcache добавляет read-through кеширование каталога
// поверх клиента CatalogService. Каталог меняется редко, а сетка
// доступности дергает его на каждый рендер, поэтому короткий TTL
// в Redis снимает основную нагрузку с интеграции.
//
// Кеш деградирует мягко: любая ошибка Redis логируется и запрос
// уходит напрямую в CatalogService.
package catalogcache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/glowdesk/booking-service/internal/integrations/catalogservice"
)

const (
	keyServices      = "catalog:services"
	keyProfessionals = "catalog:professionals"
)

// CatalogClient интерфейс нижележащего клиента каталога
type CatalogClient interface {
	ListServices(ctx context.Context) ([]catalogservice.Service, error)
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
	ListProfessionals(ctx context.Context) ([]catalogservice.Professional, error)
	GetProfessional(ctx context.Context, professionalID int64) (*catalogservice.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Cache декоратор CatalogClient с кешированием в Redis
type Cache struct {
	client CatalogClient
	rdb    *redis.Client
	ttl    time.Duration
	log    Logger
}

// New создает кеширующий декоратор
func New(client CatalogClient, rdb *redis.Client, ttl time.Duration, log Logger) *Cache {
	return &Cache{
		client: client,
		rdb:    rdb,
		ttl:    ttl,
		log:    log,
	}
}

// ListServices возвращает каталог услуг из кеша или от CatalogService
func (c *Cache) ListServices(ctx context.Context) ([]catalogservice.Service, error) {
	var services []catalogservice.Service
	if c.readCached(ctx, keyServices, &services) {
		return services, nil
	}

	services, err := c.client.ListServices(ctx)
	if err != nil {
		return nil, err
	}

	c.writeCached(ctx, keyServices, services)
	return services, nil
}

// GetService возвращает услугу из кеша или от CatalogService
func (c *Cache) GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error) {
	key := fmt.Sprintf("%s:%d", keyServices, serviceID)

	var service catalogservice.Service
	if c.readCached(ctx, key, &service) {
		return &service, nil
	}

	found, err := c.client.GetService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	c.writeCached(ctx, key, found)
	return found, nil
}

// ListProfessionals возвращает справочник мастеров из кеша или от CatalogService
func (c *Cache) ListProfessionals(ctx context.Context) ([]catalogservice.Professional, error) {
	var professionals []catalogservice.Professional
	if c.readCached(ctx, keyProfessionals, &professionals) {
		return professionals, nil
	}

	professionals, err := c.client.ListProfessionals(ctx)
	if err != nil {
		return nil, err
	}

	c.writeCached(ctx, keyProfessionals, professionals)
	return professionals, nil
}

// GetProfessional возвращает мастера из кеша или от CatalogService
func (c *Cache) GetProfessional(ctx context.Context, professionalID int64) (*catalogservice.Professional, error) {
	key := fmt.Sprintf("%s:%d", keyProfessionals, professionalID)

	var professional catalogservice.Professional
	if c.readCached(ctx, key, &professional) {
		return &professional, nil
	}

	found, err := c.client.GetProfessional(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	c.writeCached(ctx, key, found)
	return found, nil
}

// readCached пытается прочитать значение из Redis.
// Возвращает false при промахе или любой ошибке Redis.
func (c *Cache) readCached(ctx context.Context, key string, out interface{}) bool {
	payload, err := c.rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return false
	}
	if err != nil {
		c.log.Warn("catalogcache: redis get %s failed: %v", key, err)
		return false
	}

	if err := json.Unmarshal([]byte(payload), out); err != nil {
		c.log.Warn("catalogcache: corrupted cache entry %s: %v", key, err)
		return false
	}
	return true
}

// writeCached сохраняет значение в Redis best-effort
func (c *Cache) writeCached(ctx context.Context, key string, value interface{}) {
	payload, err := json.Marshal(value)
	if err != nil {
		c.log.Warn("catalogcache: marshal %s failed: %v", key, err)
		return
	}

	if err := c.rdb.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("catalogcache: redis set %s failed: %v", key, err)
	}
}
