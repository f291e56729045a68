package usecase

import "github.com/seeker/backend/internal/domain"

// seedCategories lists the built-in categories and three representative
// search terms for each
var seedCategories = []struct {
	category string
	terms    [3]string
}{
	{"Sports", [3]string{"Nike", "Adidas", "Manchester United"}},
	{"Technology", [3]string{"Apple", "Microsoft", "Python programming"}},
	{"Geography", [3]string{"India", "France", "United States"}},
	{"Art", [3]string{"Leonardo da Vinci", "Vincent van Gogh", "Louvre Museum"}},
	{"Literature", [3]string{"William Shakespeare", "To Kill a Mockingbird", "George Orwell"}},
	{"Science", [3]string{"Albert Einstein", "Theory of Relativity", "Quantum Physics"}},
	{"Music", [3]string{"The Beatles", "Mozart", "Jazz music"}},
	{"Environment", [3]string{"Climate change", "Renewable energy", "Biodiversity"}},
	{"History", [3]string{"World War II", "Industrial Revolution", "Ancient Egypt"}},
	{"Finance/Business", [3]string{"Bitcoin", "Stock market", "Entrepreneurship"}},
	{"Landmarks", [3]string{"Taj Mahal", "Great Wall of China", "Eiffel Tower"}},
	{"Food", [3]string{"Vegetarianism", "Mediterranean diet", "Fast food"}},
	{"Health/Fitness", [3]string{"Yoga", "Meditation", "Cardiovascular exercise"}},
	{"Entertainment", [3]string{"Hollywood", "Bollywood", "Film directors"}},
	{"Politics/Society", [3]string{"Democracy", "United Nations", "Human rights"}},
}

// DefaultExamples returns a fresh copy of the built-in training examples
func DefaultExamples() []domain.TrainingExample {
	out := make([]domain.TrainingExample, 0, len(seedCategories)*3)
	for _, sc := range seedCategories {
		for _, term := range sc.terms {
			out = append(out, domain.TrainingExample{Term: term, Category: sc.category})
		}
	}
	return out
}

// otherCategoryLabel is the metric label for categories added at runtime
const otherCategoryLabel = "other"

// categoryLabel maps a predicted category to a bounded metric label:
// built-in categories keep their name, everything else is "other".
func categoryLabel(category string) string {
	for _, sc := range seedCategories {
		if sc.category == category {
			return category
		}
	}
	return otherCategoryLabel
}
