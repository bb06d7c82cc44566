package dataset

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSVABTest(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, ABTest))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2001, "header plus 2000 users")
	assert.Equal(t, []string{"user_id", "group", "converted"}, records[0])

	// user 1 (index 0) is a converting control user, user 1001 starts treatment
	assert.Equal(t, []string{"1", "control", "1"}, records[1])
	assert.Equal(t, "treatment", records[1001][1])

	control, treatment := 0, 0
	for _, rec := range records[1:] {
		if rec[2] == "1" {
			if rec[1] == "control" {
				control++
			} else {
				treatment++
			}
		}
	}
	assert.Equal(t, 50, control, "every 20th control user converts")
	assert.Equal(t, 67, treatment, "every 15th treatment user converts")
}

func TestWriteCSVSales(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, Sales))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 366, "header plus 365 days of 2023")
	assert.Equal(t, []string{"date", "sales", "visitors"}, records[0])
	assert.Equal(t, "2023-01-01", records[1][0])
	assert.Equal(t, "2023-12-31", records[365][0])
	assert.Equal(t, "100", records[1][1])
	assert.Equal(t, "1000", records[1][2])
}

func TestWriteCSVUnknownKind(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, "clickstream")
	assert.Error(t, err)
	assert.Zero(t, buf.Len(), "nothing should be written for an unknown kind")
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{ABTest, Sales}, Kinds())
}
