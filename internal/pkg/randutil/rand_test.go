package randutil

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNames(t *testing.T) {
	r := NewRand(42)

	for i := 0; i < 50; i++ {
		assert.Regexp(t, regexp.MustCompile(`^[abceefg]{3}\d+$`), Uname(r))
		assert.Regexp(t, regexp.MustCompile(`^[ABCDEFG]{3}\d+$`), Gname(r))
	}
}

func TestBirthDayRange(t *testing.T) {
	r := NewRand(7)

	for i := 0; i < 200; i++ {
		day := BirthDay(r)
		assert.True(t, !day.Before(birthStart) && !day.After(birthEnd), "birthday %s out of range", day)
		assert.Equal(t, 0, day.Hour())
	}
}

func TestProvinceAndCity(t *testing.T) {
	r := NewRand(1)

	for i := 0; i < 500; i++ {
		p, c := Province(r), City(r)
		assert.True(t, p >= 1 && p <= 34)
		assert.True(t, c >= 1 && c <= 340)
	}
}

func TestBetween(t *testing.T) {
	r := NewRand(3)

	assert.Equal(t, 5, Between(r, 5, 5))
	assert.Equal(t, 5, Between(r, 5, 1))
	for i := 0; i < 100; i++ {
		v := Between(r, 10, 12)
		assert.True(t, v >= 10 && v <= 12)
	}
}

func TestSample(t *testing.T) {
	r := NewRand(9)
	items := []int{1, 2, 3, 4, 5, 6}

	got := Sample(r, items, 4)
	assert.Len(t, got, 4)
	assert.Len(t, Unique(got), 4)
	for _, v := range got {
		assert.Contains(t, items, v)
	}

	assert.ElementsMatch(t, items, Sample(r, items, 10))
	assert.Empty(t, Sample(r, items, 0))
	assert.Empty(t, Sample(r, nil, 3))
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, items)
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, Unique([]int{3, 1, 3, 2, 1}))
	assert.Empty(t, Unique(nil))
}
