package repository

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sefazor/qrtrack-backend/internal/models"
)

func TestMemoryUserRepository(t *testing.T) {
	repo := NewMemoryUserRepository()

	user := &models.User{ID: "u1", Username: "alice", Password: "hash1"}
	require.NoError(t, repo.Create(user))

	got, err := repo.GetByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	got, err = repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)

	_, err = repo.GetByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.GetByUsername("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryUserRepositoryDuplicateUsername(t *testing.T) {
	repo := NewMemoryUserRepository()

	require.NoError(t, repo.Create(&models.User{ID: "u1", Username: "alice", Password: "hash1"}))

	err := repo.Create(&models.User{ID: "u2", Username: "alice", Password: "hash2"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	// The original record is untouched by the failed create.
	got, err := repo.GetByUsername("alice")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
	assert.Equal(t, "hash1", got.Password)
}

func newTestQrCode(id, userID, shortCode string) *models.QrCode {
	return &models.QrCode{
		ID:        id,
		UserID:    userID,
		Type:      models.TypeURL,
		Content:   "example.com",
		ShortCode: shortCode,
	}
}

func TestMemoryQrCodeRepositoryIndexStaysInSync(t *testing.T) {
	repo := NewMemoryQrCodeRepository()

	require.NoError(t, repo.Create(newTestQrCode("q1", "u1", "Abc123")))

	byID, err := repo.GetByID("q1")
	require.NoError(t, err)
	byCode, err := repo.GetByShortCode("Abc123")
	require.NoError(t, err)
	assert.Equal(t, byID.ID, byCode.ID)

	exists, err := repo.ShortCodeExists("Abc123")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ShortCodeExists("zzzzzz")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMemoryQrCodeRepositoryRejectsTakenShortCode(t *testing.T) {
	repo := NewMemoryQrCodeRepository()

	require.NoError(t, repo.Create(newTestQrCode("q1", "u1", "same01")))

	err := repo.Create(newTestQrCode("q2", "u1", "same01"))
	assert.ErrorIs(t, err, ErrShortCodeTaken)

	// The failed create must not be visible anywhere.
	_, err = repo.GetByID("q2")
	assert.ErrorIs(t, err, ErrNotFound)
	byCode, err := repo.GetByShortCode("same01")
	require.NoError(t, err)
	assert.Equal(t, "q1", byCode.ID)
}

func TestMemoryQrCodeRepositoryListByOwner(t *testing.T) {
	repo := NewMemoryQrCodeRepository()

	require.NoError(t, repo.Create(newTestQrCode("q1", "u1", "code01")))
	require.NoError(t, repo.Create(newTestQrCode("q2", "u2", "code02")))
	require.NoError(t, repo.Create(newTestQrCode("q3", "u1", "code03")))

	list, err := repo.GetByUserID("u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "q1", list[0].ID)
	assert.Equal(t, "q3", list[1].ID)

	list, err = repo.GetByUserID("nobody")
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestMemoryQrCodeRepositoryRecordClick(t *testing.T) {
	repo := NewMemoryQrCodeRepository()

	require.NoError(t, repo.Create(newTestQrCode("q1", "u1", "code01")))

	require.NoError(t, repo.RecordClick("q1"))
	require.NoError(t, repo.RecordClick("q1"))

	qr, err := repo.GetByID("q1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), qr.ClickCount)
	assert.False(t, qr.UpdatedAt.IsZero())

	assert.ErrorIs(t, repo.RecordClick("missing"), ErrNotFound)
}

func TestMemoryQrCodeRepositoryConcurrentClicksLoseNothing(t *testing.T) {
	repo := NewMemoryQrCodeRepository()
	require.NoError(t, repo.Create(newTestQrCode("q1", "u1", "code01")))

	const workers = 50
	const clicksPerWorker = 20

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < clicksPerWorker; j++ {
				_ = repo.RecordClick("q1")
			}
		}()
	}
	wg.Wait()

	qr, err := repo.GetByID("q1")
	require.NoError(t, err)
	assert.Equal(t, int64(workers*clicksPerWorker), qr.ClickCount)
}

func TestMemoryQrCodeRepositoryConcurrentCreatesNeverShareACode(t *testing.T) {
	repo := NewMemoryQrCodeRepository()

	const workers = 20
	var wg sync.WaitGroup
	taken := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			taken[i] = repo.Create(newTestQrCode(fmt.Sprintf("q%d", i), "u1", "race01"))
		}(i)
	}
	wg.Wait()

	// Exactly one create wins the code; the rest are told to regenerate.
	winners := 0
	for _, err := range taken {
		if err == nil {
			winners++
		} else {
			assert.ErrorIs(t, err, ErrShortCodeTaken)
		}
	}
	assert.Equal(t, 1, winners)
}
