package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestMessage_Before_Orders_By_Time_Then_ID(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()

	older := Message{ID: uuid.New(), CreatedAt: now}
	newer := Message{ID: uuid.New(), CreatedAt: now.Add(time.Second)}
	req.True(older.Before(newer))
	req.False(newer.Before(older))

	// Same timestamp: the id breaks the tie, in one direction only
	a := Message{ID: uuid.New(), CreatedAt: now}
	b := Message{ID: uuid.New(), CreatedAt: now}
	req.NotEqual(a.Before(b), b.Before(a))
}
