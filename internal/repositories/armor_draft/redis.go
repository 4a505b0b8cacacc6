package armordraft

import (
	"context"
	"encoding/json"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/KirkDiggler/mech-armor-api/internal/entities/mech"
	"github.com/KirkDiggler/mech-armor-api/internal/errors"
	redisclient "github.com/KirkDiggler/mech-armor-api/internal/redis"
)

const (
	draftKeyPrefix = "armor:draft:"
	draftIndexKey  = "armor:drafts"

	// DefaultTTL is how long an untouched draft lives
	DefaultTTL = 24 * time.Hour

	// bounds the List fan-out
	listConcurrency = 8
)

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
}

// RedisConfig contains configuration for the Redis draft repository
type RedisConfig struct {
	Client redisclient.Client
	// TTL defaults to DefaultTTL
	TTL time.Duration
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	return nil
}

// NewRedis creates a Redis-backed draft repository. Drafts are JSON documents under
// armor:draft:<id> with a sliding TTL; the armor:drafts set indexes them for List.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    ttl,
	}, nil
}

func draftKey(id string) string {
	return draftKeyPrefix + id
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	key := draftKey(input.Draft.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check draft existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("draft with ID %s already exists", input.Draft.ID)
	}

	data, err := json.Marshal(input.Draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, r.ttl)
	pipe.SAdd(ctx, draftIndexKey, input.Draft.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create draft")
	}

	return &CreateOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	result, err := r.client.Get(ctx, draftKey(input.ID)).Result()
	if err != nil {
		if err == redisclient.Nil {
			return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get draft")
	}

	var draft mech.ArmorDraft
	if err := json.Unmarshal([]byte(result), &draft); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal draft")
	}

	return &GetOutput{Draft: &draft}, nil
}

// List loads every indexed draft concurrently. Index entries whose draft has expired are
// pruned from the index.
func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, draftIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list draft ids")
	}

	drafts := make([]*mech.ArmorDraft, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			out, err := r.Get(gctx, GetInput{ID: id})
			if err != nil {
				if errors.IsNotFound(err) {
					return nil
				}
				return err
			}
			drafts[i] = out.Draft
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	live := make([]*mech.ArmorDraft, 0, len(drafts))
	var expired []interface{}
	for i, draft := range drafts {
		if draft == nil {
			expired = append(expired, ids[i])
			continue
		}
		live = append(live, draft)
	}
	if len(expired) > 0 {
		if err := r.client.SRem(ctx, draftIndexKey, expired...).Err(); err != nil {
			return nil, errors.Wrapf(err, "failed to prune draft index")
		}
	}

	sort.Slice(live, func(i, j int) bool {
		if live[i].CreatedAt != live[j].CreatedAt {
			return live[i].CreatedAt < live[j].CreatedAt
		}
		return live[i].ID < live[j].ID
	})

	return &ListOutput{Drafts: live}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateDraft(input.Draft); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Draft)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal draft")
	}

	// XX only writes an existing key, so an expired draft is not resurrected
	ok, err := r.client.SetXX(ctx, draftKey(input.Draft.ID), data, r.ttl).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update draft")
	}
	if !ok {
		return nil, errors.NotFoundf("draft with ID %s not found", input.Draft.ID)
	}

	return &UpdateOutput{Draft: input.Draft}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errDraftIDEmpty)
	}

	pipe := r.client.TxPipeline()
	del := pipe.Del(ctx, draftKey(input.ID))
	pipe.SRem(ctx, draftIndexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete draft")
	}

	if del.Val() == 0 {
		return nil, errors.NotFoundf("draft with ID %s not found", input.ID)
	}

	return &DeleteOutput{}, nil
}
