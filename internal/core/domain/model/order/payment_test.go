package order_test

import (
	"testing"

	"bakery/internal/core/domain/model/order"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentMethodFromSelector(t *testing.T) {
	assert.Equal(t, order.MethodUPI, order.PaymentMethodFromSelector("UPI"))

	for _, selector := range []string{"", "COD", "upi", "card"} {
		assert.Equal(t, order.MethodCOD, order.PaymentMethodFromSelector(selector), selector)
	}
}

func TestPaymentMethod_InitialPaymentStatus(t *testing.T) {
	assert.Equal(t, order.PaymentPendingVerification, order.MethodUPI.InitialPaymentStatus())
	assert.Equal(t, order.PaymentPending, order.MethodCOD.InitialPaymentStatus())
}

func TestPaymentMethod_Validate(t *testing.T) {
	require.NoError(t, order.MethodCOD.Validate())
	require.NoError(t, order.MethodUPI.Validate())
	assert.ErrorIs(t, order.MethodUnknown.Validate(), order.ErrInvalidPaymentMethod)
	assert.Equal(t, "Unknown", order.MethodUnknown.String())
}

func TestParsePaymentStatus(t *testing.T) {
	t.Run("accepts every wire name", func(t *testing.T) {
		for _, status := range order.PaymentStatuses() {
			parsed, err := order.ParsePaymentStatus(status.String())

			require.NoError(t, err)
			assert.Equal(t, status, parsed)
		}
	})

	t.Run("accepts the compact form", func(t *testing.T) {
		parsed, err := order.ParsePaymentStatus("PendingVerification")

		require.NoError(t, err)
		assert.Equal(t, order.PaymentPendingVerification, parsed)
	})

	t.Run("rejects unknown names", func(t *testing.T) {
		_, err := order.ParsePaymentStatus("Settled")

		assert.ErrorIs(t, err, order.ErrInvalidPaymentStatus)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)

		for _, input := range []string{"PAID", "paid", " Paid", "pending verification"} {
			_, err = order.ParsePaymentStatus(input)
			assert.ErrorIs(t, err, order.ErrInvalidPaymentStatus, input)
		}
		assert.ErrorIs(t, order.PaymentUnknown.Validate(), order.ErrInvalidPaymentStatus)
	})
}
