package catalog

import "github.com/srgjo27/eventflow/internal/core/domain"

// Builtin is the demo line-up used when no catalog file is configured.
func Builtin() *Catalog {
	c, err := New(builtinEvents)
	if err != nil {
		panic(err)
	}
	return c
}

var builtinEvents = []domain.Event{
	{
		ID:             "1",
		Name:           "Summer Music Festival",
		Category:       domain.CategoryConcert,
		Date:           "2026-07-15",
		Time:           "18:00",
		Venue:          "Central Park Amphitheater",
		Description:    "A night of live bands and headline acts under the open sky.",
		BasePrice:      50,
		Rows:           15,
		Columns:        12,
		Image:          "/images/summer-festival.jpg",
		AvailableSeats: 145,
	},
	{
		ID:             "2",
		Name:           "Tech Innovation Summit",
		Category:       domain.CategoryConference,
		Date:           "2026-08-20",
		Time:           "09:00",
		Venue:          "Moscone Convention Center",
		Description:    "Keynotes and workshops on AI, cloud and developer tooling.",
		BasePrice:      150,
		Rows:           10,
		Columns:        10,
		Image:          "/images/tech-summit.jpg",
		AvailableSeats: 78,
	},
	{
		ID:             "3",
		Name:           "Stand-Up Comedy Night",
		Category:       domain.CategoryComedy,
		Date:           "2026-06-05",
		Time:           "20:30",
		Venue:          "The Laugh Factory",
		Description:    "Five comics, one stage, no mercy.",
		BasePrice:      30,
		Rows:           8,
		Columns:        10,
		Image:          "/images/comedy-night.jpg",
		AvailableSeats: 52,
	},
	{
		ID:             "4",
		Name:           "Symphony Under the Stars",
		Category:       domain.CategoryConcert,
		Date:           "2026-09-12",
		Time:           "19:30",
		Venue:          "Hollywood Bowl",
		Description:    "The city orchestra plays film scores from the last fifty years.",
		BasePrice:      75,
		Rows:           20,
		Columns:        15,
		Image:          "/images/symphony.jpg",
		AvailableSeats: 230,
	},
	{
		ID:             "5",
		Name:           "Startup Founders Conference",
		Category:       domain.CategoryConference,
		Date:           "2026-10-03",
		Time:           "10:00",
		Venue:          "Javits Center",
		Description:    "Fundraising, hiring and growth stories from founders who shipped.",
		BasePrice:      95,
		Rows:           12,
		Columns:        10,
		Image:          "/images/founders.jpg",
		AvailableSeats: 96,
	},
	{
		ID:             "6",
		Name:           "Improv Showdown",
		Category:       domain.CategoryComedy,
		Date:           "2026-11-21",
		Time:           "21:00",
		Venue:          "Second City Theater",
		Description:    "Two improv troupes, audience suggestions, one winner.",
		BasePrice:      25,
		Rows:           6,
		Columns:        8,
		Image:          "/images/improv.jpg",
		AvailableSeats: 40,
	},
}
