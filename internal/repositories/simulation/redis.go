package simulation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/landlord/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	reportKeyPrefix   = "report:"
	propertyKeyPrefix = "property:totals:"
	completedIndexKey = "reports:completed"
	winsKey           = "wins"

	defaultRecentLimit = 10
)

// Property totals hash fields
const (
	fieldGames          = "games"
	fieldLandings       = "landings"
	fieldNet            = "net"
	fieldReturnPerEvent = "return_per_event"
)

// ErrReportNotFound is returned when a report is not found
var ErrReportNotFound = errors.New("report not found")

// Config holds configuration for the Redis simulation repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed simulation repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

func reportKey(gameID string) string {
	return fmt.Sprintf("%s%s", reportKeyPrefix, gameID)
}

func propertyKey(propertyID int) string {
	return fmt.Sprintf("%s%d", propertyKeyPrefix, propertyID)
}

// SaveReport stores the report, indexes it by completion time and folds it into the totals
func (r *redisRepository) SaveReport(ctx context.Context, input *SaveReportInput) error {
	if input == nil || input.Report == nil {
		return errors.New("input and report cannot be nil")
	}
	if input.Report.GameID == "" {
		return errors.New("report game ID cannot be empty")
	}

	reportJSON, err := json.Marshal(input.Report)
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	exists, err := r.client.Exists(ctx, reportKey(input.Report.GameID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check report: %w", err)
	}

	pipe := r.client.TxPipeline()

	pipe.Set(ctx, reportKey(input.Report.GameID), reportJSON, 0)
	pipe.ZAdd(ctx, completedIndexKey, redis.Z{
		Score:  float64(input.Report.CompletedAt.UnixNano()),
		Member: input.Report.GameID,
	})

	// a re-saved report must not be counted twice
	if exists == 0 {
		for _, prop := range input.Report.Properties {
			key := propertyKey(prop.ID)
			pipe.HIncrBy(ctx, key, fieldGames, 1)
			pipe.HIncrBy(ctx, key, fieldLandings, int64(prop.Landings))
			pipe.HIncrBy(ctx, key, fieldNet, int64(prop.Net))
			pipe.HIncrByFloat(ctx, key, fieldReturnPerEvent, prop.ReturnPerEvent)
		}
		if input.Report.Winner != "" {
			pipe.HIncrBy(ctx, winsKey, input.Report.Winner, 1)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

// GetReport retrieves a report by game ID from Redis
func (r *redisRepository) GetReport(ctx context.Context, input *GetReportInput) (*models.GameReport, error) {
	if input == nil || input.GameID == "" {
		return nil, errors.New("input and game ID cannot be empty")
	}

	reportJSON, err := r.client.Get(ctx, reportKey(input.GameID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var report models.GameReport
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to unmarshal report: %w", err)
	}

	return &report, nil
}

// ListRecentReports retrieves reports from the completion index, newest first
func (r *redisRepository) ListRecentReports(ctx context.Context, input *ListRecentReportsInput) (*ListRecentReportsOutput, error) {
	limit := defaultRecentLimit
	if input != nil && input.Limit > 0 {
		limit = input.Limit
	}

	gameIDs, err := r.client.ZRevRange(ctx, completedIndexKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	if len(gameIDs) == 0 {
		return &ListRecentReportsOutput{Reports: []*models.GameReport{}}, nil
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.StringCmd, len(gameIDs))
	for i, id := range gameIDs {
		cmds[i] = pipe.Get(ctx, reportKey(id))
	}

	// missing keys surface as redis.Nil on the individual commands
	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get reports: %w", err)
	}

	reports := make([]*models.GameReport, 0, len(cmds))
	for _, cmd := range cmds {
		reportJSON, err := cmd.Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to get report: %w", err)
		}

		var report models.GameReport
		if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
			return nil, fmt.Errorf("failed to unmarshal report: %w", err)
		}
		reports = append(reports, &report)
	}

	return &ListRecentReportsOutput{Reports: reports}, nil
}

// GetPropertyTotals retrieves the accumulated hash for each requested property
func (r *redisRepository) GetPropertyTotals(ctx context.Context, input *GetPropertyTotalsInput) (*GetPropertyTotalsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	pipe := r.client.Pipeline()
	cmds := make([]*redis.MapStringStringCmd, len(input.PropertyIDs))
	for i, id := range input.PropertyIDs {
		cmds[i] = pipe.HGetAll(ctx, propertyKey(id))
	}

	if len(cmds) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to get property totals: %w", err)
		}
	}

	totals := make([]PropertyTotals, 0, len(cmds))
	for i, cmd := range cmds {
		fields, err := cmd.Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get property totals: %w", err)
		}

		t, err := parseTotals(input.PropertyIDs[i], fields)
		if err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}

	return &GetPropertyTotalsOutput{Totals: totals}, nil
}

func parseTotals(propertyID int, fields map[string]string) (PropertyTotals, error) {
	t := PropertyTotals{PropertyID: propertyID}

	ints := map[string]*int64{
		fieldGames:    &t.Games,
		fieldLandings: &t.Landings,
		fieldNet:      &t.Net,
	}
	for field, dst := range ints {
		raw, ok := fields[field]
		if !ok {
			continue
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return t, fmt.Errorf("failed to parse %s for property %d: %w", field, propertyID, err)
		}
		*dst = v
	}

	if raw, ok := fields[fieldReturnPerEvent]; ok {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return t, fmt.Errorf("failed to parse %s for property %d: %w", fieldReturnPerEvent, propertyID, err)
		}
		t.ReturnPerEventSum = v
	}

	return t, nil
}

// GetWinCounts retrieves the wins hash
func (r *redisRepository) GetWinCounts(ctx context.Context, input *GetWinCountsInput) (*GetWinCountsOutput, error) {
	fields, err := r.client.HGetAll(ctx, winsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get win counts: %w", err)
	}

	wins := make(map[string]int64, len(fields))
	for name, raw := range fields {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse wins for %s: %w", name, err)
		}
		wins[name] = v
	}

	return &GetWinCountsOutput{Wins: wins}, nil
}
