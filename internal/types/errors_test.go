package types_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ginjaninja78/calculate-sales/internal/types"
)

func TestError_Message(t *testing.T) {
	tests := []struct {
		name string
		err  *types.Error
		want string
	}{
		{"missing definition", types.NewError(types.KindMissingDefinitionFile, types.Branch.Label), "branch definition file does not exist"},
		{"invalid definition", types.NewError(types.KindInvalidDefinitionFormat, types.Commodity.Label), "commodity definition file has an invalid format"},
		{"non sequential", types.NewError(types.KindNonSequentialFileNames, "00000005.rcd"), "sales file names are not sequential"},
		{"malformed record", types.NewError(types.KindMalformedRecord, "00000001.rcd"), "00000001.rcd has an invalid format"},
		{"unknown branch", types.NewError(types.KindUnknownBranchCode, "00000002.rcd"), "00000002.rcd has an invalid branch code"},
		{"unknown product", types.NewError(types.KindUnknownProductCode, "00000003.rcd"), "00000003.rcd has an invalid commodity code"},
		{"overflow", types.NewError(types.KindAmountOverflow, "00000004.rcd"), "total amount exceeded 10 digits"},
		{"non numeric", types.NewError(types.KindNonNumericAmount, "00000004.rcd"), "an unexpected error occurred"},
		{"write", types.NewError(types.KindWriteError, "/tmp/branch.out"), "an unexpected error occurred"},
		{"unknown", types.NewError(types.KindUnknown, ""), "an unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestError_CauseIsNotRendered(t *testing.T) {
	cause := errors.New("permission denied")
	err := types.WrapError(types.KindUnknown, "00000001.rcd", cause)

	assert.Equal(t, "an unexpected error occurred", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("stage: %w", types.NewError(types.KindAmountOverflow, "x"))

	assert.Equal(t, types.KindAmountOverflow, types.KindOf(wrapped))
	assert.True(t, types.IsKind(wrapped, types.KindAmountOverflow))
	assert.False(t, types.IsKind(wrapped, types.KindMalformedRecord))
	assert.Equal(t, types.KindUnknown, types.KindOf(errors.New("plain")))

	var target *types.Error
	require.ErrorAs(t, wrapped, &target)
	assert.Equal(t, "x", target.Subject)
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "UnknownError", types.KindUnknown.String())
	assert.Equal(t, "UnknownBranchCode", types.KindUnknownBranchCode.String())
	assert.Equal(t, "Kind(99)", types.Kind(99).String())
}

func TestCategoryPatterns(t *testing.T) {
	assert.True(t, types.Branch.CodePattern.MatchString("013"))
	assert.False(t, types.Branch.CodePattern.MatchString("13"))
	assert.False(t, types.Branch.CodePattern.MatchString("0134"))
	assert.False(t, types.Branch.CodePattern.MatchString("01a"))

	assert.True(t, types.Commodity.CodePattern.MatchString("SFT00001"))
	assert.True(t, types.Commodity.CodePattern.MatchString("abcdEFGH"))
	assert.False(t, types.Commodity.CodePattern.MatchString("SFT0001"))
	assert.False(t, types.Commodity.CodePattern.MatchString("SFT-0001"))
}
