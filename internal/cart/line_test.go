package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_Accessors(t *testing.T) {
	t.Run("remote line reads from the product snapshot", func(t *testing.T) {
		l := RemoteLine(11, 7, 2, testProduct(7, "Whey", "199.90"))

		price, err := l.UnitPrice()
		require.NoError(t, err)
		assert.Equal(t, "199.9", price.String())
		assert.Equal(t, "Whey", l.DisplayTitle())
		assert.Equal(t, "/img/p.jpg", l.DisplayImage())
	})

	t.Run("local line reads the denormalized fields", func(t *testing.T) {
		l := LocalLine(testProduct(7, "Whey", "199.90"), 2)

		price, err := l.UnitPrice()
		require.NoError(t, err)
		assert.Equal(t, "199.9", price.String())
		assert.Equal(t, "Whey", l.DisplayTitle())
		assert.Equal(t, "/img/p.jpg", l.DisplayImage())
	})

	t.Run("unparseable price surfaces an error", func(t *testing.T) {
		l := LocalLine(testProduct(7, "Whey", "free"), 1)

		_, err := l.UnitPrice()
		assert.Error(t, err)
	})
}

func TestEncodeLocal_RemoteLineDegrades(t *testing.T) {
	// A remote line written to the guest store keeps its display fields in
	// the flat local shape.
	payload, err := encodeLocal([]Line{RemoteLine(11, 7, 2, testProduct(7, "Whey", "199.90"))})
	require.NoError(t, err)
	assert.JSONEq(t,
		`[{"product_id":7,"quantity":2,"price":"199.90","title":"Whey","image":"/img/p.jpg"}]`,
		payload)
}

func TestDecodeLocal(t *testing.T) {
	t.Run("parses the guest wire shape", func(t *testing.T) {
		lines, err := decodeLocal(`[{"product_id":7,"quantity":2,"price":"199.90","title":"Whey","image":"/img/whey.jpg"}]`)
		require.NoError(t, err)
		require.Len(t, lines, 1)
		assert.Equal(t, KindLocal, lines[0].Kind)
		assert.Equal(t, uint(7), lines[0].ProductID)
	})

	t.Run("rejects corrupt payloads", func(t *testing.T) {
		_, err := decodeLocal(`{"oops"`)
		assert.Error(t, err)
	})
}
