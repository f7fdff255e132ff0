package landing

import "mindbloom/models"

// Dataset is the public showcase content. It is not read from the admin
// collections.
// TODO: serve consultants and marketplace items from the admin-managed
// records once the landing page is meant to reflect them.
type Dataset struct {
	Consultants []models.LandingConsultant
	Items       []models.MarketItem
	FAQs        []models.FAQ
}

// DefaultDataset is the content shipped with the landing page.
func DefaultDataset() Dataset {
	return Dataset{
		Consultants: []models.LandingConsultant{
			{ID: "c1", Name: "Dr. Ananya Mehta", Expertise: "Anxiety", Location: "Mumbai", Position: models.Location{Lat: 19.076, Lng: 72.8777}, Rating: 4.9, Reviews: 212, Languages: []string{"English", "Hindi"}},
			{ID: "c2", Name: "Rahul Verma", Expertise: "Career", Location: "Bengaluru", Position: models.Location{Lat: 12.9716, Lng: 77.5946}, Rating: 4.6, Reviews: 98, Languages: []string{"English", "Kannada"}},
			{ID: "c3", Name: "Sara Thomas", Expertise: "Parenting", Location: "Kochi", Position: models.Location{Lat: 9.9312, Lng: 76.2673}, Rating: 4.8, Reviews: 143, Languages: []string{"English", "Malayalam"}},
			{ID: "c4", Name: "Imran Sheikh", Expertise: "Depression", Location: "Delhi", Position: models.Location{Lat: 28.6139, Lng: 77.209}, Rating: 4.7, Reviews: 176, Languages: []string{"English", "Urdu", "Hindi"}},
			{ID: "c5", Name: "Kavya Iyer", Expertise: "Anxiety", Location: "Chennai", Position: models.Location{Lat: 13.0827, Lng: 80.2707}, Rating: 4.5, Reviews: 64, Languages: []string{"English", "Tamil"}},
			{ID: "c6", Name: "Neha Kapoor", Expertise: "Relationships", Location: "Pune", Position: models.Location{Lat: 18.5204, Lng: 73.8567}, Rating: 4.8, Reviews: 120, Languages: []string{"English", "Marathi"}},
		},
		Items: []models.MarketItem{
			{ID: "m1", Title: "Mindful Mornings", Description: "A four week meditation course", Category: "Course", Price: 1499, Popularity: 980},
			{ID: "m2", Title: "Worry Less Workbook", Description: "Printable CBT worksheets", Category: "E-book", Price: 299, Popularity: 720},
			{ID: "m3", Title: "Calm Light", Description: "Sunrise lamp for better sleep", Category: "Gadget", Price: 3999, Popularity: 410},
			{ID: "m4", Title: "Mood Journal", Description: "Track your mood every day", Category: "App", Price: 0, Popularity: 1320},
			{ID: "m5", Title: "Parenting Teens", Description: "Course on communicating with teenagers", Category: "Course", Price: 1999, Popularity: 530},
			{ID: "m6", Title: "Sleep Stories", Description: "Audio e-book of bedtime stories", Category: "E-book", Price: 199, Popularity: 640},
			{ID: "m7", Title: "Breath Coach", Description: "Guided breathing app", Category: "App", Price: 99, Popularity: 870},
			{ID: "m8", Title: "Focus Timer Cube", Description: "A gadget for focused work sessions", Category: "Gadget", Price: 1299, Popularity: 300},
		},
		FAQs: []models.FAQ{
			{Question: "How do I book a session?", Answer: "Choose a consultant, pick a date and time, and submit the booking form."},
			{Question: "Are sessions confidential?", Answer: "Yes. Sessions are private between you and your consultant."},
			{Question: "Can I meet online?", Answer: "Most consultants offer online sessions through a video meeting link."},
			{Question: "How do I pay?", Answer: "Payment details are shared after your booking is confirmed."},
		},
	}
}
