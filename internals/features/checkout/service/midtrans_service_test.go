package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapTransactionStatus(t *testing.T) {
	cases := []struct {
		provider string
		status   string
		paid     bool
		known    bool
	}{
		{"capture", "paid", true, true},
		{"settlement", "paid", true, true},
		{"pending", "pending", false, true},
		{"deny", "failed", false, true},
		{"cancel", "failed", false, true},
		{"expire", "failed", false, true},
		{"failure", "failed", false, true},
		{"refund", "", false, false},
		{"", "", false, false},
	}

	for _, tc := range cases {
		t.Run(tc.provider, func(t *testing.T) {
			status, paid, known := MapTransactionStatus(tc.provider)
			assert.Equal(t, tc.status, status)
			assert.Equal(t, tc.paid, paid)
			assert.Equal(t, tc.known, known)
		})
	}
}
