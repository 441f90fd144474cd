// db/redis.go
package db

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	logger "github.com/headwall-io/gatehouse/logging"
	"github.com/headwall-io/gatehouse/model"
)

var (
	RedisClient   *redis.Client
	encryptionKey []byte
)

func InitRedis() error {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:         viper.GetString("redis.addr"),
		Password:     viper.GetString("redis.password"),
		DB:           viper.GetInt("redis.db"),
		DialTimeout:  viper.GetDuration("redis.dialTimeout"),
		ReadTimeout:  viper.GetDuration("redis.readTimeout"),
		WriteTimeout: viper.GetDuration("redis.writeTimeout"),
		PoolSize:     viper.GetInt("redis.poolSize"),
		PoolTimeout:  viper.GetDuration("redis.poolTimeout"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := RedisClient.Ping(ctx).Result()
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	encryptionKey = []byte(viper.GetString("redis.encryptionKey"))
	if len(encryptionKey) != 32 {
		return fmt.Errorf("invalid encryption key length: must be 32 bytes")
	}

	logger.Info("Successfully connected to Redis")
	return nil
}

func CloseRedis() {
	if RedisClient != nil {
		if err := RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

func encrypt(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}
	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func decrypt(ciphertext []byte) ([]byte, error) {
	block, err := aes.NewCipher(encryptionKey)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(ciphertext) < nonceSize {
		return nil, fmt.Errorf("ciphertext too short")
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

// CacheTenant stores a tenant record as the shared second-level cache entry
// for its host identifier. Tenant config may carry provisioning secrets, so
// the payload is encrypted at rest.
func CacheTenant(ctx context.Context, tenant *model.Tenant) error {
	tenantJSON, err := json.Marshal(tenant)
	if err != nil {
		return fmt.Errorf("failed to marshal tenant: %w", err)
	}

	encryptedTenant, err := encrypt(tenantJSON)
	if err != nil {
		return fmt.Errorf("failed to encrypt tenant: %w", err)
	}

	key := fmt.Sprintf("tenant:host:%s", tenant.HostIdentifier)
	defaultTTL := viper.GetDuration("redis.defaultCacheTTL")
	err = RedisClient.Set(ctx, key, base64.StdEncoding.EncodeToString(encryptedTenant), defaultTTL).Err()
	if err != nil {
		return fmt.Errorf("failed to cache tenant: %w", err)
	}

	logger.Debug("Tenant cached successfully", zap.String("tenantID", tenant.ID))
	return nil
}

// GetCachedTenant returns the cached tenant for a host identifier, or nil on
// a cache miss.
func GetCachedTenant(ctx context.Context, hostIdentifier string) (*model.Tenant, error) {
	key := fmt.Sprintf("tenant:host:%s", hostIdentifier)
	encryptedTenantStr, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Tenant not found in cache", zap.String("host", hostIdentifier))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get tenant from cache: %w", err)
	}

	encryptedTenant, err := base64.StdEncoding.DecodeString(encryptedTenantStr)
	if err != nil {
		return nil, fmt.Errorf("failed to decode tenant: %w", err)
	}

	tenantJSON, err := decrypt(encryptedTenant)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt tenant: %w", err)
	}

	var tenant model.Tenant
	err = json.Unmarshal(tenantJSON, &tenant)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal tenant: %w", err)
	}

	logger.Debug("Tenant retrieved from cache", zap.String("host", hostIdentifier))
	return &tenant, nil
}

// DeleteCachedTenant drops the second-level entry for a host identifier.
func DeleteCachedTenant(ctx context.Context, hostIdentifier string) error {
	key := fmt.Sprintf("tenant:host:%s", hostIdentifier)
	err := RedisClient.Del(ctx, key).Err()
	if err != nil {
		return fmt.Errorf("failed to delete tenant from cache: %w", err)
	}
	logger.Debug("Tenant deleted from cache", zap.String("host", hostIdentifier))
	return nil
}

// AppendRateRecord appends one attempt to the sliding window for a
// (principal, operation) pair. Records are scored by timestamp so expired
// entries can be trimmed by score.
func AppendRateRecord(ctx context.Context, principalID, operation string, ts time.Time, window time.Duration) error {
	key := fmt.Sprintf("ratelimit:%s:%s", principalID, operation)
	pipe := RedisClient.Pipeline()
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(ts.UnixNano()), Member: ts.UnixNano()})
	pipe.Expire(ctx, key, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append rate record: %w", err)
	}
	return nil
}

// CountRateRecords counts attempts for a (principal, operation) pair with a
// timestamp at or after since, trimming older records as a side effect.
func CountRateRecords(ctx context.Context, principalID, operation string, since time.Time) (int64, error) {
	key := fmt.Sprintf("ratelimit:%s:%s", principalID, operation)
	pipe := RedisClient.Pipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(since.UnixNano()-1, 10))
	card := pipe.ZCard(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to count rate records: %w", err)
	}

	count := card.Val()
	logger.Debug("Rate window count",
		zap.String("key", key),
		zap.Int64("count", count))
	return count, nil
}
