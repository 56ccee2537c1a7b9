package core_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NovatecConsulting/library-service-go/core"
)

func Test_NewTitle_AcceptsValidInput(t *testing.T) {
	testCases := []string{
		"Clean Code",
		"Clean Code: A Handbook of Agile Software Craftsmanship",
		"The Hitchhiker's Guide to the Galaxy",
		"C++ (for Dummies)",
		"50% off!",
		"Händler des Todes",
	}

	for _, input := range testCases {
		t.Run(input, func(t *testing.T) {
			title, err := core.NewTitle(input)

			assert.NoError(t, err)
			assert.Equal(t, input, title.String())
		})
	}
}

func Test_NewTitle_RejectsInvalidInput(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "control character", input: "Clean\tCode"},
		{name: "disallowed character", input: "Clean Code §2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewTitle(tc.input)

			var malformed *core.MalformedValueError
			assert.True(t, errors.As(err, &malformed), "expected a MalformedValueError, got: %v", err)
		})
	}
}

func Test_NewAuthor_RejectsBlankInput(t *testing.T) {
	for _, input := range []string{"", "   "} {
		_, err := core.NewAuthor(input)

		var malformed *core.MalformedValueError
		assert.True(t, errors.As(err, &malformed), "expected a MalformedValueError, got: %v", err)
	}
}

func Test_NewBorrower_AcceptsValidInput(t *testing.T) {
	testCases := []string{
		"slu",
		"Uncle Bob",
		"Robert C- Martin",
		"_underscore",
	}

	for _, input := range testCases {
		t.Run(input, func(t *testing.T) {
			borrower, err := core.NewBorrower(input)

			assert.NoError(t, err)
			assert.Equal(t, input, borrower.String())
		})
	}
}

func Test_NewBorrower_RejectsInvalidInput(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "leading blank", input: " slu"},
		{name: "leading dash", input: "-slu"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := core.NewBorrower(tc.input)

			var malformed *core.MalformedValueError
			assert.True(t, errors.As(err, &malformed), "expected a MalformedValueError, got: %v", err)
		})
	}
}
