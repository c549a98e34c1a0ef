package board

import (
	"strings"
	"testing"

	"github.com/KirkDiggler/landlord/internal/models"
	"github.com/stretchr/testify/suite"
)

type BoardTestSuite struct {
	suite.Suite
}

func TestBoardTestSuite(t *testing.T) {
	suite.Run(t, new(BoardTestSuite))
}

func (s *BoardTestSuite) TestStandardBoard() {
	squares, err := Standard()
	s.Require().NoError(err)
	s.Require().Len(squares, models.BoardSize)

	kinds := make(map[models.PropertyKind]int)
	for _, sq := range squares {
		kinds[sq.Kind]++
	}
	s.Equal(22, kinds[models.PropertyKindStreet])
	s.Equal(4, kinds[models.PropertyKindRailroad])
	s.Equal(2, kinds[models.PropertyKindUtility])
	s.Equal(12, kinds[models.PropertyKindSpecial])

	boardwalk := squares[39]
	s.Equal("Boardwalk", boardwalk.Name)
	s.Equal("blue", boardwalk.Group)
	s.Equal(2, boardwalk.GroupSize)
	s.Equal(400, boardwalk.Cost)
	s.Require().NotNil(boardwalk.Street)
	s.Equal([models.RentTiers]int{50, 200, 600, 1400, 1700, 2000}, boardwalk.Street.Rent)
}

func (s *BoardTestSuite) TestStandardReturnsFreshCopies() {
	first, err := Standard()
	s.Require().NoError(err)
	second, err := Standard()
	s.Require().NoError(err)

	first[1].Mortgaged = true
	s.False(second[1].Mortgaged)
}

func (s *BoardTestSuite) TestLoadRejectsShortBoard() {
	_, err := Load(strings.NewReader(`[{"id":0,"name":"Go","kind":"special"}]`))
	s.Require().Error(err)
	s.ErrorIs(err, ErrBoardSize)
}

func (s *BoardTestSuite) TestLoadRejectsBadJSON() {
	_, err := Load(strings.NewReader(`{`))
	s.Require().Error(err)
}
