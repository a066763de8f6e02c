package events

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"mercato-core/internal/core/domain"
	"mercato-core/pkg/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogPublisher_WritesStructuredEvent(t *testing.T) {
	var buf bytes.Buffer
	log := logger.NewWithWriter("info", &buf)
	pub := NewLogPublisher(log)

	lotteryID := uuid.New()
	event := domain.NewEvent(domain.EventTicketPurchased, lotteryID, map[string]any{
		"ticket_count": 3,
	})

	err := pub.Publish(context.Background(), event)
	require.NoError(t, err)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, string(domain.EventTicketPurchased), line["event_type"])
	assert.Equal(t, lotteryID.String(), line["lottery_id"])
}
