package validation

import (
	"encoding/json"
	"errors"
	"io"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  *string  `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"omitempty,gte=0"`
}

func TestToDetailsUsesJSONFieldNames(t *testing.T) {
	Init()
	neg := -1.0
	err := binding.Validator.ValidateStruct(&sample{Price: &neg})

	d := ToDetails(err)
	assert.Equal(t, "is required", d["name"])
	assert.Equal(t, "must be greater than or equal to 0", d["price"])
}

func TestToDetailsPayloadErrors(t *testing.T) {
	assert.Nil(t, ToDetails(nil))
	assert.Equal(t, "empty body", ToDetails(io.EOF)["payload"])

	var v map[string]any
	err := json.Unmarshal([]byte(`{`), &v)
	assert.Equal(t, "invalid json", ToDetails(err)["payload"])

	assert.Equal(t, "invalid payload", ToDetails(errors.New("x"))["payload"])
}

func TestOnlyMissing(t *testing.T) {
	Init()
	assert.True(t, OnlyMissing(io.EOF))
	assert.True(t, OnlyMissing(binding.Validator.ValidateStruct(&sample{})))

	neg := -1.0
	name := "x"
	assert.False(t, OnlyMissing(binding.Validator.ValidateStruct(&sample{Name: &name, Price: &neg})))

	var v struct {
		Price float64 `json:"price"`
	}
	assert.False(t, OnlyMissing(json.Unmarshal([]byte(`{"price":"free"}`), &v)))
	assert.False(t, OnlyMissing(json.Unmarshal([]byte(`{`), &v)))
}
