package services

import (
	"bytes"
	"context"
	"testing"

	"zambus/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocsServiceGenerate(t *testing.T) {
	env, _, b := bookedEnv(t)
	p, err := PaymentService{Env: env}.Create(context.Background(), passenger, paymentInput(b.ID, "MTN12345678"))
	require.NoError(t, err)
	docs := DocsService{Env: env}

	ticket, name, err := docs.ETicket(passenger, b.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(ticket, []byte("%PDF")))
	assert.Equal(t, "ETICKET_1_John_Doe_1A.pdf", name)

	receipt, name, err := docs.Receipt(passenger, p.ID)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(receipt, []byte("%PDF")))
	assert.Equal(t, "RECEIPT_1_MTN12345678.pdf", name)

	_, _, err = docs.ETicket(rival, b.ID)
	assert.True(t, domain.IsNotFound(err))
}

func TestDocsServiceSkipsCancelledTickets(t *testing.T) {
	env, _, b := bookedEnv(t)
	_, err := BookingService{Env: env}.Cancel(context.Background(), passenger, b.ID, true)
	require.NoError(t, err)

	_, _, err = DocsService{Env: env}.ETicket(passenger, b.ID)
	assert.True(t, domain.IsValidation(err))
}
