package comicvine

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"comicvault/internal/domain"
)

func TestResults_DecodesArrayAndObject(t *testing.T) {
	var many Response[Issue]
	require.NoError(t, json.Unmarshal([]byte(`{"status_code":1,"error":"OK","results":[{"id":1},{"id":2}]}`), &many))
	assert.Len(t, many.Results, 2)
	assert.True(t, many.Success())

	var one Response[Issue]
	require.NoError(t, json.Unmarshal([]byte(`{"status_code":1,"error":"OK","results":{"id":3}}`), &one))
	require.Len(t, one.Results, 1)
	assert.Equal(t, int64(3), one.Results[0].ID)

	var none Response[Issue]
	require.NoError(t, json.Unmarshal([]byte(`{"status_code":1,"error":"OK","results":null}`), &none))
	assert.Empty(t, none.Results)
}

func TestResults_RejectsScalar(t *testing.T) {
	var resp Response[Issue]
	err := json.Unmarshal([]byte(`{"status_code":1,"error":"OK","results":"nope"}`), &resp)

	var decodeErr *domain.DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "results", decodeErr.Path)
}

func TestResponse_Success(t *testing.T) {
	assert.False(t, (&Response[Issue]{StatusCode: 1, Error: "Object Not Found"}).Success())
	assert.False(t, (&Response[Issue]{StatusCode: 101, Error: "OK"}).Success())
}
