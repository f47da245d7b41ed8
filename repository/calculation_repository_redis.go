package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Clave de la lista y tamaño máximo del histórico en Redis.
const (
	redisHistoryKey = "inmocalc:calculations"
	redisHistoryMax = 1000
)

// CalculationRepositoryRedis guarda el histórico como lista de JSON en
// Redis, recortada a las últimas entradas.
type CalculationRepositoryRedis struct {
	client *redis.Client
	ctx    context.Context
}

func NewCalculationRepositoryRedis(addr string) *CalculationRepositoryRedis {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &CalculationRepositoryRedis{
		client: rdb,
		ctx:    context.Background(),
	}
}

func (r *CalculationRepositoryRedis) Save(kind string, input any, result any) error {
	record := CalculationRecord{
		ID:        uuid.NewString(),
		Kind:      kind,
		Input:     input,
		Result:    result,
		CreatedAt: time.Now(),
	}

	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}

	if err := r.client.LPush(r.ctx, redisHistoryKey, payload).Err(); err != nil {
		return err
	}
	return r.client.LTrim(r.ctx, redisHistoryKey, 0, redisHistoryMax-1).Err()
}
