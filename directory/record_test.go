package directory

import (
	"errors"
	"testing"

	"github.com/as3d12/instaboard/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_FreshLoad(t *testing.T) {
	raw := rawBatch("Anna Lee", "Bo Chen")
	raw[0].Name.Title = "Ms"
	raw[0].Picture.Thumbnail = "https://img.example.com/thumb/anna.jpg"

	got, err := Normalize(raw, 0)
	require.NoError(t, err)
	assert.Equal(t, []UserRecord{
		{ID: 1, Name: "Anna Lee", Email: "anna@example.com", PictureURL: "https://img.example.com/large/anna.jpg"},
		{ID: 2, Name: "Bo Chen", Email: "bo@example.com", PictureURL: "https://img.example.com/large/bo.jpg"},
	}, got)
}

func TestNormalize_AppendOffset(t *testing.T) {
	got, err := Normalize(rawBatch(secondBatchNames...), 12)
	require.NoError(t, err)
	assert.Equal(t, seq(13, 24), ids(got))
}

func TestNormalize_EmailVerbatim(t *testing.T) {
	raw := rawBatch("Anna Lee")
	raw[0].Email = "  Anna.LEE+tag@Example.COM "
	got, err := Normalize(raw, 0)
	require.NoError(t, err)
	assert.Equal(t, "  Anna.LEE+tag@Example.COM ", got[0].Email)
}

func TestNormalize_MalformedRecord(t *testing.T) {
	noName := rawBatch("Anna Lee", "Bo Chen")
	noName[1].Name = nil
	_, err := Normalize(noName, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, client.ErrNetwork))

	noPicture := rawBatch("Anna Lee")
	noPicture[0].Picture = nil
	_, err = Normalize(noPicture, 0)
	assert.True(t, client.IsNetworkError(err))
}

func TestNormalize_Empty(t *testing.T) {
	got, err := Normalize(nil, 5)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
