// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package dyndb

import (
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursor_RoundTrip(t *testing.T) {
	lastKey := map[string]types.AttributeValue{
		"id":      &types.AttributeValueMemberS{Value: "abc123"},
		"version": &types.AttributeValueMemberN{Value: "42"},
		"blob":    &types.AttributeValueMemberB{Value: []byte{0x01, 0x02}},
	}

	token, err := EncodeCursor(lastKey)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	decoded, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.Equal(t, lastKey, decoded)
}

func TestCursor_Empty(t *testing.T) {
	token, err := EncodeCursor(nil)
	require.NoError(t, err)
	assert.Empty(t, token)

	key, err := DecodeCursor("")
	require.NoError(t, err)
	assert.Nil(t, key)
}

func TestCursor_UnsupportedAttribute(t *testing.T) {
	_, err := EncodeCursor(map[string]types.AttributeValue{
		"flag": &types.AttributeValueMemberBOOL{Value: true},
	})
	assert.Error(t, err)
}

func TestCursor_Invalid(t *testing.T) {
	for _, token := range []string{"!!", "bm90LWpzb24", "e30"} {
		_, err := DecodeCursor(token)
		assert.ErrorIs(t, err, ErrInvalidCursor, token)
	}
}
