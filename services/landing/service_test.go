package landing

import (
	"testing"

	"mindbloom/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(cs []models.LandingConsultant) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}

func TestConsultantFinder(t *testing.T) {
	s := NewService(DefaultDataset())

	anxiety := s.Consultants(ConsultantFilter{Expertise: "Anxiety", Sort: "rating"})
	assert.Equal(t, []string{"Dr. Ananya Mehta", "Kavya Iyer"}, names(anxiety))

	assert.Len(t, s.Consultants(ConsultantFilter{Expertise: "all"}), 6)
	assert.Equal(t, []string{"Rahul Verma"}, names(s.Consultants(ConsultantFilter{Search: "bengaluru"})))

	byName := s.Consultants(ConsultantFilter{Sort: "name"})
	assert.Equal(t, "Dr. Ananya Mehta", byName[0].Name)
	assert.Equal(t, "Sara Thomas", byName[len(byName)-1].Name)
}

func TestMarketplace(t *testing.T) {
	s := NewService(DefaultDataset())

	first := s.Marketplace(MarketFilter{Sort: "popularity", Page: 1})
	assert.Equal(t, 8, first.Total)
	assert.Equal(t, 2, first.TotalPages)
	require.Len(t, first.Rows, MarketPageSize)
	assert.Equal(t, "Mood Journal", first.Rows[0].Title)

	second := s.Marketplace(MarketFilter{Sort: "popularity", Page: 2})
	assert.Len(t, second.Rows, 2)

	courses := s.Marketplace(MarketFilter{Category: "Course", Sort: "price_desc"})
	require.Len(t, courses.Rows, 2)
	assert.Equal(t, "Parenting Teens", courses.Rows[0].Title)

	cheap := s.Marketplace(MarketFilter{Sort: "price_asc"})
	assert.Equal(t, 0.0, cheap.Rows[0].Price)

	assert.Equal(t, 2, s.Marketplace(MarketFilter{Search: "sleep"}).Total)
}

func TestBookingStubStoresNothing(t *testing.T) {
	s := NewService(DefaultDataset())
	req := models.BookingRequest{Name: "Ravi", Email: "ravi@example.test", Phone: "99999", ConsultantID: "c1", Date: "2024-02-01", Time: "10:00"}

	receipt, err := s.Book(req)
	require.NoError(t, err)
	assert.True(t, receipt.Submitted)

	for _, email := range []string{"ravi.example.test", "a@", "@b", "x y@z"} {
		req.Email = email
		receipt, err = s.Book(req)
		var verr *models.ValidationError
		require.ErrorAs(t, err, &verr, email)
		assert.Equal(t, "email", verr.Field, email)
		assert.False(t, receipt.Submitted, email)
	}

	req.Email = "ravi@example.test"
	req.Time = ""
	_, err = s.Book(req)
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "time", verr.Field)
	assert.Equal(t, "time is required", verr.Message)
}
