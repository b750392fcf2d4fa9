package catalog

import "bookstore/internal/entity"

// fallbackBooks is the compiled-in catalog snapshot served when the store is
// unreachable. Declaration order is the order the fallback path returns
// records in; it is not re-sorted.
var fallbackBooks = []entity.Book{
	{
		ID:            "book-001",
		Title:         "The Midnight Library",
		Author:        "Matt Haig",
		Description:   "Between life and death there is a library, and within that library the shelves go on forever. A novel about regret, hope and second chances.",
		Price:         13.99,
		Image:         "/images/books/midnight-library.jpg",
		ISBN:          "978-0-525-55948-1",
		Genre:         []string{"Fiction", "Fantasy"},
		Tags:          []string{"bestseller", "book-club"},
		DatePublished: "2020-08-13",
		Pages:         304,
		Language:      "English",
		Publisher:     "Viking",
		Rating:        4.2,
		ReviewCount:   128,
		InStock:       true,
		Featured:      true,
	},
	{
		ID:            "book-002",
		Title:         "Atomic Habits",
		Author:        "James Clear",
		Description:   "A proven framework for improving every day. Tiny changes, remarkable results: running small experiments on yourself until good habits stick.",
		Price:         16.20,
		Image:         "/images/books/atomic-habits.jpg",
		ISBN:          "978-0-7352-1129-2",
		Genre:         []string{"Self-Help", "Psychology"},
		Tags:          []string{"bestseller", "productivity"},
		DatePublished: "2018-10-16",
		Pages:         320,
		Language:      "English",
		Publisher:     "Avery",
		Rating:        4.8,
		ReviewCount:   412,
		InStock:       true,
		Featured:      true,
	},
	{
		ID:            "book-003",
		Title:         "Project Hail Mary",
		Author:        "Andy Weir",
		Description:   "A lone astronaut wakes up on a spaceship with no memory of his mission and the survival of humanity on his shoulders.",
		Price:         14.50,
		Image:         "/images/books/project-hail-mary.jpg",
		ISBN:          "978-0-593-13520-4",
		Genre:         []string{"Science Fiction"},
		Tags:          []string{"space", "bestseller"},
		DatePublished: "2021-05-04",
		Pages:         476,
		Language:      "English",
		Publisher:     "Ballantine Books",
		Rating:        4.7,
		ReviewCount:   350,
		InStock:       true,
		Featured:      true,
	},
	{
		ID:            "book-004",
		Title:         "Educated",
		Author:        "Tara Westover",
		Description:   "A memoir about a young girl who, kept out of school, leaves her survivalist family and goes on to earn a PhD from Cambridge University.",
		Price:         12.75,
		Image:         "/images/books/educated.jpg",
		ISBN:          "978-0-399-59050-4",
		Genre:         []string{"Biography", "Memoir"},
		Tags:          []string{"book-club"},
		DatePublished: "2018-02-20",
		Pages:         334,
		Language:      "English",
		Publisher:     "Random House",
		Rating:        4.5,
		ReviewCount:   267,
		InStock:       true,
		Featured:      false,
	},
	{
		ID:            "book-005",
		Title:         "The Pragmatic Programmer",
		Author:        "David Thomas, Andrew Hunt",
		Description:   "Your journey to mastery. Straight from the programming trenches, a guide to pragmatic software craftsmanship.",
		Price:         39.99,
		Image:         "/images/books/pragmatic-programmer.jpg",
		ISBN:          "978-0-13-595705-9",
		Genre:         []string{"Technology", "Programming"},
		Tags:          []string{"classic", "software"},
		DatePublished: "2019-09-13",
		Pages:         352,
		Language:      "English",
		Publisher:     "Addison-Wesley",
		Rating:        4.6,
		ReviewCount:   198,
		InStock:       false,
		Featured:      false,
	},
	{
		ID:            "book-006",
		Title:         "Dune",
		Author:        "Frank Herbert",
		Description:   "Set on the desert planet Arrakis, the story of the boy Paul Atreides and the spice melange, the most valuable substance in the universe.",
		Price:         10.99,
		Image:         "/images/books/dune.jpg",
		ISBN:          "978-0-441-17271-9",
		Genre:         []string{"Science Fiction", "Fantasy"},
		Tags:          []string{"classic"},
		DatePublished: "1965-08-01",
		Pages:         412,
		Language:      "English",
		Publisher:     "Ace Books",
		Rating:        4.4,
		ReviewCount:   522,
		InStock:       true,
		Featured:      false,
	},
	{
		ID:            "book-007",
		Title:         "Born to Run",
		Author:        "Christopher McDougall",
		Description:   "A hidden tribe, superathletes, and the greatest race the world has never seen. An epic adventure about the secrets of ultra-running.",
		Price:         11.30,
		Image:         "/images/books/born-to-run.jpg",
		ISBN:          "978-0-307-27918-7",
		Genre:         []string{"Sports", "Biography"},
		Tags:          []string{"running"},
		DatePublished: "2009-05-05",
		Pages:         287,
		Language:      "English",
		Publisher:     "Knopf",
		Rating:        4.3,
		ReviewCount:   176,
		InStock:       true,
		Featured:      false,
	},
	{
		ID:            "book-008",
		Title:         "Thinking, Fast and Slow",
		Author:        "Daniel Kahneman",
		Description:   "A tour of the mind explaining the two systems that drive the way we think, and how we can tap into the benefits of slow thinking.",
		Price:         15.40,
		Image:         "/images/books/thinking-fast-and-slow.jpg",
		ISBN:          "978-0-374-53355-7",
		Genre:         []string{"Psychology", "Science"},
		Tags:          []string{"nonfiction"},
		DatePublished: "2011-10-25",
		Pages:         499,
		Language:      "English",
		Publisher:     "Farrar, Straus and Giroux",
		Rating:        4.1,
		ReviewCount:   289,
		InStock:       false,
		Featured:      false,
	},
}

// Fallback returns the static catalog snapshot. Callers must not mutate it.
func Fallback() []entity.Book {
	return fallbackBooks
}
