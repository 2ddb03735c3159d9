package character

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/tabuleirodocaos/sheet-api/internal/entities/caos"
	"github.com/tabuleirodocaos/sheet-api/internal/errors"
	"github.com/tabuleirodocaos/sheet-api/internal/pkg/clock"
	redisclient "github.com/tabuleirodocaos/sheet-api/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	playerIndexPrefix  = "character:player:"

	// Error messages
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errPlayerIDEmpty    = "player ID cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Use real clock if none provided
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.Character.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	// Character write and player index update are one transaction
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // No TTL for characters
	if input.Character.PlayerID != "" {
		pipe.SAdd(ctx, playerIndexPrefix+input.Character.PlayerID, input.Character.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}

	return &CreateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.ID
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	// MigrateJSON lifts stored v1 documents to the current schema, so the
	// calculators downstream never see old attribute names.
	char, err := caos.MigrateJSON([]byte(result))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character")
	}

	return &GetOutput{Character: char}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	if input.Character.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.Character.ID

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("character with ID %s not found", input.Character.ID)
	}

	updated := input.Character.Clone()
	updated.UpdatedAt = r.clock.Now().Unix()

	data, err := json.Marshal(updated)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}

	return &UpdateOutput{Character: updated}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	key := characterKeyPrefix + input.ID

	// Load first so the player index entry can be removed alongside
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	char, err := caos.MigrateJSON([]byte(result))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character")
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	if char.PlayerID != "" {
		pipe.SRem(ctx, playerIndexPrefix+char.PlayerID, input.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error) {
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument(errPlayerIDEmpty)
	}

	ids, err := r.client.SMembers(ctx, playerIndexPrefix+input.PlayerID).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list characters for player %s", input.PlayerID)
	}

	characters := make([]*caos.Character, 0, len(ids))
	for _, id := range ids {
		result, err := r.client.Get(ctx, characterKeyPrefix+id).Result()
		if err != nil {
			if err == redis.Nil {
				// Stale index entry; skip rather than fail the whole list
				slog.Warn("character in player index but not found",
					"character_id", id,
					"player_id", input.PlayerID)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get character %s", id)
		}

		char, err := caos.MigrateJSON([]byte(result))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal character %s", id)
		}
		characters = append(characters, char)
	}

	return &ListByPlayerIDOutput{Characters: characters}, nil
}
