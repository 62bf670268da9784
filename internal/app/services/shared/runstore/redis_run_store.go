package runstore

import (
	"context"
	"fmt"
	"time"
	"wav-intake-service/internal/app/contracts"
	"wav-intake-service/internal/pkg/dto/responses"
	"wav-intake-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	summaryKeyFormat  = "intake:run:%s:summary"
	workbookKeyFormat = "intake:run:%s:workbook"
)

type redisRunStore struct {
	client *redis.Client
}

func NewRedisRunStore(client *redis.Client) contracts.RunStore {
	return &redisRunStore{client: client}
}

func (r *redisRunStore) SaveRun(ctx context.Context, summary *responses.RunSummary, workbook []byte, ttl time.Duration) error {
	encoded, err := json.Marshal(summary)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	summaryKey := fmt.Sprintf(summaryKeyFormat, summary.RunID)
	if err := r.client.Set(ctx, summaryKey, encoded, ttl).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}

	workbookKey := fmt.Sprintf(workbookKeyFormat, summary.RunID)
	if err := r.client.Set(ctx, workbookKey, workbook, ttl).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *redisRunStore) GetSummary(ctx context.Context, runID string) (*responses.RunSummary, error) {
	key := fmt.Sprintf(summaryKeyFormat, runID)
	data, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, exceptions.ErrRunNotFound(runID)
	} else if err != nil {
		return nil, exceptions.ErrRedisGet(err, key)
	}

	summary := new(responses.RunSummary)
	if err := json.Unmarshal([]byte(data), summary); err != nil {
		return nil, exceptions.ErrDecodeStoredRun(err)
	}
	return summary, nil
}

func (r *redisRunStore) GetWorkbook(ctx context.Context, runID string) ([]byte, string, error) {
	summary, err := r.GetSummary(ctx, runID)
	if err != nil {
		return nil, "", err
	}

	key := fmt.Sprintf(workbookKeyFormat, runID)
	data, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, "", exceptions.ErrRunNotFound(runID)
	} else if err != nil {
		return nil, "", exceptions.ErrRedisGet(err, key)
	}
	return data, summary.FileName, nil
}
