package middleware

import (
	"bytes"
	"net/http"
	"time"

	"github.com/agustiinveraa/inmoflow/internal/domain/entity"
	"github.com/agustiinveraa/inmoflow/internal/domain/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// IdempotencyKeyHeader is the HTTP header for idempotency keys
	IdempotencyKeyHeader = "Idempotency-Key"
	// IdempotencyKeyTTL is how long keys are valid
	IdempotencyKeyTTL = 24 * time.Hour
)

// responseRecorder wraps gin.ResponseWriter to capture the response body
type responseRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w responseRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the cached response when a request carries a key it
// has already processed. Requests without a key pass through unchanged.
func Idempotency(repo repository.IdempotencyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost && c.Request.Method != http.MethodPut && c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.Next()
			return
		}

		userID, ok := callerID(c)
		if !ok {
			c.Next()
			return
		}

		replayOrRecord(c, repo, key, userID)
	}
}

// IdempotencyRequired is a stricter variant that rejects requests missing
// the Idempotency-Key header. Used on endpoints where an accidental retry
// would double-book something.
func IdempotencyRequired(repo repository.IdempotencyRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		key := c.GetHeader(IdempotencyKeyHeader)
		if key == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Idempotency-Key header is required for this request",
			})
			return
		}

		userID, ok := callerID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "User not authenticated",
			})
			return
		}

		replayOrRecord(c, repo, key, userID)
	}
}

func replayOrRecord(c *gin.Context, repo repository.IdempotencyRepository, key string, userID uuid.UUID) {
	existing, err := repo.GetByKey(c.Request.Context(), key, userID)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to check idempotency key",
		})
		return
	}

	if existing != nil && !existing.IsExpired() {
		c.Header("X-Idempotency-Replayed", "true")
		c.Data(existing.ResponseCode, "application/json", []byte(existing.ResponseBody))
		c.Abort()
		return
	}

	recorder := &responseRecorder{body: bytes.NewBufferString(""), ResponseWriter: c.Writer}
	c.Writer = recorder

	c.Next()

	// Only cache successful responses; a failed request may be retried
	if c.Writer.Status() >= 200 && c.Writer.Status() < 300 {
		ikey := &entity.IdempotencyKey{
			Key:          key,
			UserID:       userID,
			Endpoint:     c.Request.Method + " " + c.FullPath(),
			ResponseCode: c.Writer.Status(),
			ResponseBody: recorder.body.String(),
			ExpiresAt:    time.Now().Add(IdempotencyKeyTTL),
		}
		_ = repo.Create(c.Request.Context(), ikey)
	}
}

func callerID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(UserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	userID, ok := value.(uuid.UUID)
	return userID, ok
}
