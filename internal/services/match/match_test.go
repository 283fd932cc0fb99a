package match

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type NormalizeTestSuite struct {
	suite.Suite
}

func TestNormalizeTestSuite(t *testing.T) {
	suite.Run(t, new(NormalizeTestSuite))
}

func (s *NormalizeTestSuite) TestLowercasesAndTrims() {
	s.Equal("pizza", Normalize("  PiZZa  "))
}

func (s *NormalizeTestSuite) TestStripsPunctuation() {
	s.Equal("pizza", Normalize("Pizza!!!"))
	// Both short tokens survive the apostrophe strip, then collapse
	s.Equal("dontpanic", Normalize("Don't panic!!!"))
}

func (s *NormalizeTestSuite) TestHyphensBecomeCompound() {
	s.Equal("hotdog", Normalize("hot-dog"))
	s.Equal("hotdog", Normalize("Hot Dog"))
	s.Equal("hotdog", Normalize("hotdog"))
}

func (s *NormalizeTestSuite) TestCompoundCollapseSkipsLongTokens() {
	s.Equal("chocolate pudding", Normalize("Chocolate Pudding"))
}

func (s *NormalizeTestSuite) TestDropsLeadingArticle() {
	s.Equal("beach", Normalize("the beach"))
	s.Equal("apple", Normalize("An Apple"))
	// A bare article is an answer, not an article
	s.Equal("the", Normalize("the"))
}

func (s *NormalizeTestSuite) TestRegularPlurals() {
	s.Equal("cat", Normalize("cats"))
	s.Equal("puppy", Normalize("puppies"))
	s.Equal("box", Normalize("boxes"))
	s.Equal("dish", Normalize("dishes"))
	s.Equal("glass", Normalize("glasses"))
}

func (s *NormalizeTestSuite) TestDoubleSNotStripped() {
	s.Equal("chess", Normalize("chess"))
}

func (s *NormalizeTestSuite) TestIrregularPlurals() {
	s.Equal("mouse", Normalize("mice"))
	s.Equal("child", Normalize("children"))
	s.Equal("sheep", Normalize("sheep"))
}

func (s *NormalizeTestSuite) TestMisspellings() {
	s.Equal("chocolate", Normalize("choclate"))
	s.Equal("dinosaur", Normalize("dinasour"))
	s.Equal("surprise", Normalize("suprise"))
}

func (s *NormalizeTestSuite) TestSpellingVariants() {
	s.Equal("color", Normalize("colour"))
	s.Equal("donut", Normalize("doughnut"))
}

func (s *NormalizeTestSuite) TestVariantPluralComposes() {
	// Plural of a regional variant settles on the canonical singular
	s.Equal("color", Normalize("colours"))
}

func (s *NormalizeTestSuite) TestNumberWords() {
	s.Equal("3", Normalize("three"))
	s.Equal("10", Normalize("Ten"))
}

func (s *NormalizeTestSuite) TestIdempotent() {
	inputs := []string{
		"Cats", "The Puppies", "hot-dog", "mice", "colours",
		"buses", "pyjamas", "Don't!!", "three", "  spaced   out  ",
		"chess", "a", "", "strawbery", "ICE CREAM",
	}
	for _, input := range inputs {
		once := Normalize(input)
		s.Equal(once, Normalize(once), "input %q", input)
	}
}

type SimilarityTestSuite struct {
	suite.Suite
}

func TestSimilarityTestSuite(t *testing.T) {
	suite.Run(t, new(SimilarityTestSuite))
}

func (s *SimilarityTestSuite) TestIdenticalAlwaysMatch() {
	s.True(Similar("cat", "cat"))
	s.True(Similar("", ""))
}

func (s *SimilarityTestSuite) TestShortStringsRequireExact() {
	s.False(Similar("cat", "bat"))
	s.False(Similar("cat", "cats"))
}

func (s *SimilarityTestSuite) TestMediumStringsTolerateOneEdit() {
	s.True(Similar("house", "houze"))
	s.False(Similar("house", "mouse trap"))
}

func (s *SimilarityTestSuite) TestLongStringsTolerateTwoEdits() {
	s.True(Similar("elephant", "elefant"))
	s.True(Similar("spaghetti", "spagheti"))
	s.False(Similar("elephant", "relevant"))
}

func (s *SimilarityTestSuite) TestPairUsesStricterTolerance() {
	// "cat" requires an exact match even against a forgiving long string
	s.False(Similar("cat", "cart"))
	s.False(Similar("dog", "dodge"))
}

func (s *SimilarityTestSuite) TestSymmetric() {
	pairs := [][2]string{
		{"house", "houze"},
		{"cat", "bat"},
		{"elephant", "elefant"},
		{"", "abc"},
	}
	for _, p := range pairs {
		s.Equal(Similar(p[0], p[1]), Similar(p[1], p[0]), "pair %v", p)
	}
}

func (s *SimilarityTestSuite) TestDistance() {
	s.Equal(0, Distance("same", "same"))
	s.Equal(3, Distance("kitten", "sitting"))
	s.Equal(4, Distance("", "four"))
	s.Equal(1, Distance("cat", "cart"))
}
