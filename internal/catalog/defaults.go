package catalog

import "github.com/CareerPath-2025/recommendation-service/internal/models"

const (
	defaultFallbackRole  = "software developer"
	defaultLearningWeeks = 4
)

func defaultProjectTemplates() []ProjectTemplate {
	return []ProjectTemplate{
		{
			Title:             "Real-time Chat Application",
			Description:       "Build a scalable chat application with real-time messaging, user authentication, and file sharing capabilities",
			Difficulty:        "Intermediate",
			EstimatedDuration: "3-4 weeks",
			TechStack:         []string{"React", "Node.js", "Socket.io", "MongoDB", "JWT"},
			LearningOutcomes:  []string{"WebSocket programming", "Real-time communication", "User authentication", "Database design"},
			ImpactScore:       85,
			SuitableFor:       []string{"Computer Science Engineering", "Information Technology"},
		},
		{
			Title:             "AI-Powered Resume Analyzer",
			Description:       "Create an intelligent system that analyzes resumes and provides improvement suggestions using NLP",
			Difficulty:        "Advanced",
			EstimatedDuration: "4-6 weeks",
			TechStack:         []string{"Python", "Flask", "NLP", "OpenAI API", "React", "PostgreSQL"},
			LearningOutcomes:  []string{"Natural Language Processing", "API integration", "Machine Learning", "Full-stack development"},
			ImpactScore:       95,
			SuitableFor:       []string{"Computer Science Engineering", "Information Technology"},
		},
		{
			Title:             "IoT Home Automation System",
			Description:       "Design and build a smart home system with sensor monitoring and remote control capabilities",
			Difficulty:        "Advanced",
			EstimatedDuration: "6-8 weeks",
			TechStack:         []string{"Arduino", "Raspberry Pi", "Node.js", "React", "MQTT", "MySQL"},
			LearningOutcomes:  []string{"IoT protocols", "Embedded systems", "Sensor integration", "Real-time monitoring"},
			ImpactScore:       90,
			SuitableFor:       []string{"Electronics and Communication", "Electrical Engineering", "Computer Science Engineering"},
		},
		{
			Title:             "E-commerce Platform with Microservices",
			Description:       "Build a complete e-commerce solution using microservices architecture",
			Difficulty:        "Advanced",
			EstimatedDuration: "8-10 weeks",
			TechStack:         []string{"Node.js", "React", "Docker", "Kubernetes", "MongoDB", "Redis"},
			LearningOutcomes:  []string{"Microservices architecture", "Containerization", "Scalable systems", "Payment integration"},
			ImpactScore:       95,
			SuitableFor:       []string{"Computer Science Engineering", "Information Technology"},
		},
	}
}

func defaultRoleSkills() map[string][]string {
	return map[string][]string{
		"software developer":   {"JavaScript", "Python", "React", "Node.js", "Git", "SQL", "Data Structures", "Algorithms"},
		"data scientist":       {"Python", "R", "Machine Learning", "Statistics", "SQL", "Pandas", "NumPy", "Jupyter"},
		"frontend developer":   {"HTML", "CSS", "JavaScript", "React", "Vue.js", "TypeScript", "Sass", "Webpack"},
		"backend developer":    {"Node.js", "Python", "Java", "Express", "MongoDB", "PostgreSQL", "REST APIs", "Docker"},
		"full stack developer": {"JavaScript", "React", "Node.js", "MongoDB", "Git", "REST APIs", "Docker", "AWS"},
	}
}

func defaultCoreSkills() []string {
	return []string{"JavaScript", "Python", "React", "Git", "Data Structures", "Algorithms"}
}

func defaultLearningTimes() map[string]int {
	return map[string]int{
		"JavaScript": 8,
		"Python":     6,
		"React":      6,
		"Node.js":    4,
		"Git":        2,
		"SQL":        4,
		"Docker":     3,
		"AWS":        8,
	}
}

func defaultLearningResources() map[string][]models.LearningResource {
	return map[string][]models.LearningResource{
		"JavaScript": {
			{Title: "MDN JavaScript Guide", URL: "https://developer.mozilla.org/en-US/docs/Web/JavaScript/Guide"},
			{Title: "JavaScript.info", URL: "https://javascript.info/"},
		},
		"Python": {
			{Title: "Python.org Tutorial", URL: "https://docs.python.org/3/tutorial/"},
			{Title: "Automate the Boring Stuff", URL: "https://automatetheboringstuff.com/"},
		},
		"React": {
			{Title: "React Official Docs", URL: "https://react.dev/"},
			{Title: "React Tutorial", URL: "https://react.dev/learn"},
		},
	}
}
