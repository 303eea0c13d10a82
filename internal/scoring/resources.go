package scoring

import "github.com/Uday1017/Vocably/internal/models"

// Curated learning resources, attached per category only when the score
// falls into the needs-improvement branch.

func grammarResources() *models.ResourceGroup {
	return &models.ResourceGroup{
		Category: models.CategoryGrammar,
		Items: []models.ResourceLink{
			{Title: "English Grammar Basics", URL: "https://www.youtube.com/results?search_query=english+grammar+for+presentations", Type: "YouTube"},
			{Title: "Common Grammar Mistakes", URL: "https://www.grammarly.com/blog/common-grammar-mistakes/", Type: "Blog"},
			{Title: "Business English Grammar", URL: "https://www.coursera.org/courses?query=business%20english", Type: "Course"},
		},
	}
}

func fluencyResources() *models.ResourceGroup {
	return &models.ResourceGroup{
		Category: models.CategoryFluency,
		Items: []models.ResourceLink{
			{Title: "How to Stop Saying Um and Uh", URL: "https://www.youtube.com/results?search_query=how+to+stop+saying+um+and+uh", Type: "YouTube"},
			{Title: "Public Speaking Fluency Tips", URL: "https://www.toastmasters.org/resources/public-speaking-tips", Type: "Blog"},
			{Title: "Presentation Skills Course", URL: "https://www.coursera.org/courses?query=presentation%20skills", Type: "Course"},
		},
	}
}

func politenessResources() *models.ResourceGroup {
	return &models.ResourceGroup{
		Category: models.CategoryPoliteness,
		Items: []models.ResourceLink{
			{Title: "Professional Communication Skills", URL: "https://www.youtube.com/results?search_query=professional+communication+skills", Type: "YouTube"},
			{Title: "Business Etiquette Guide", URL: "https://www.indeed.com/career-advice/career-development/business-etiquette", Type: "Blog"},
			{Title: "Effective Communication Course", URL: "https://www.linkedin.com/learning/topics/communication", Type: "Course"},
		},
	}
}

func bodyLanguageResources() *models.ResourceGroup {
	return &models.ResourceGroup{
		Category: models.CategoryBodyLanguage,
		Items: []models.ResourceLink{
			{Title: "Body Language for Presentations", URL: "https://www.youtube.com/results?search_query=body+language+for+presentations", Type: "YouTube"},
			{Title: "Eye Contact Tips", URL: "https://www.youtube.com/results?search_query=eye+contact+presentation+tips", Type: "YouTube"},
			{Title: "Hand Gestures Guide", URL: "https://www.scienceofpeople.com/hand-gestures/", Type: "Blog"},
		},
	}
}
