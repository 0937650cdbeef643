package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "date only", input: `"2001-02-03"`, want: NewDate(2001, time.February, 3)},
		{name: "local timestamp", input: `"2001-02-03T10:11:12"`, want: NewDate(2001, time.February, 3)},
		{name: "rfc3339", input: `"2001-02-03T10:11:12Z"`, want: NewDate(2001, time.February, 3)},
		{name: "null", input: `null`, want: Date{}},
		{name: "empty", input: `""`, want: Date{}},
		{name: "garbage", input: `"yesterday"`, wantErr: true},
		{name: "number", input: `20010203`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(d.Time), "got %v", d)
		})
	}
}

func TestDate_MarshalJSON(t *testing.T) {
	b, err := json.Marshal(Student{ID: 1, BirthDate: NewDate(1999, time.December, 31)})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"birthDate":"1999-12-31"`)

	b, err = json.Marshal(Date{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}

func TestDate_Scan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2010, time.May, 6, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2010-05-06", d.String())

	require.NoError(t, d.Scan([]byte("2011-07-08")))
	assert.Equal(t, "2011-07-08", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}

func TestDocumentType_AllowsLetters(t *testing.T) {
	assert.False(t, DocumentTypeIDCard.AllowsLetters())
	assert.False(t, DocumentTypeNationalID.AllowsLetters())
	assert.True(t, DocumentTypeForeignID.AllowsLetters())
	assert.True(t, DocumentTypePassport.AllowsLetters())
}

func TestToken_ValidAt(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	tok := Token{ExpiresAt: now.Add(time.Hour)}

	assert.True(t, tok.ValidAt(now))
	assert.False(t, tok.ValidAt(now.Add(time.Hour)))
	assert.False(t, tok.ValidAt(now.Add(2*time.Hour)))
}
