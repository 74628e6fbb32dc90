package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestSwaggerDoc(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(doc)), "rendered document must be JSON")

	assert.Contains(t, doc, `"title": "Travel Planner API"`)
	assert.Contains(t, doc, "travel_dates")
	assert.Contains(t, doc, `"503"`)
}
