package common_test

import (
	"testing"

	"github.com/PithLimb/StreamingServices/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestParseWholeNumber(t *testing.T) {
	tests := []struct {
		s       string
		want    int
		wantErr assert.ErrorAssertionFunc
	}{
		{"2016", 2016, assert.NoError},
		{" 116 ", 116, assert.NoError},
		{"-3", -3, assert.NoError},
		{"0", 0, assert.NoError},
		{"20.5", 0, assert.Error},
		{"abc", 0, assert.Error},
		{"", 0, assert.Error},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got, err := common.ParseWholeNumber(tt.s)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
			if err != nil {
				assert.ErrorIs(t, err, common.ErrInvalidInput)
			}
		})
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		s       string
		want    float64
		wantErr assert.ErrorAssertionFunc
	}{
		{"4.5", 4.5, assert.NoError},
		{"4,5", 4.5, assert.NoError},
		{" 9.99", 9.99, assert.NoError},
		{"5", 5, assert.NoError},
		{"NaN", 0, assert.Error},
		{"Inf", 0, assert.Error},
		{"five", 0, assert.Error},
		{"", 0, assert.Error},
	}

	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			got, err := common.ParseDecimal(tt.s)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
			if err != nil {
				assert.ErrorIs(t, err, common.ErrInvalidInput)
			}
		})
	}
}
