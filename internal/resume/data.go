package resume

// Default returns the seed resume compiled into the binary. Admin uploads
// replace it at runtime via the Store.
func Default() Resume {
	return Resume{
		Name:    "Shreyansh Chheda",
		Title:   "AI/ML Engineer | GenAI Specialist | Full-Stack Developer",
		Summary: "AI/ML Engineer specializing in full-stack development, data science and AI/ML. Proven ability to build end-to-end machine learning solutions and drive business impact, such as saving 3M AUD annually through automation and enhancing customer experience via the AskTelstra GenAI chatbot. Expert in Python, AI, Java, and cloud technologies.",
		Contact: ContactInfo{
			Email:    "shreyansh.chheda@gmail.com",
			LinkedIn: "https://linkedin.com/in/shreyansh-chheda/",
			GitHub:   "https://github.com/shreyansh",
			Location: "Pune, Maharashtra, India",
		},
		Experience: []Experience{
			{
				Company:     "Telstra (TLSA)",
				Position:    "ML Engineer",
				Location:    "Pune, Maharashtra, India",
				StartDate:   "2025-07",
				Description: "Leading AI/ML initiatives including GenAI call drivers automation, AskTelstra chatbot enhancements, and advanced analytics solutions. Tech lead mentoring team on cutting-edge AI solutions.",
				Achievements: []string{
					"Built GenAI Call Drivers automation analyzing 25K calls/day, delivering insights to board of directors",
					"Enhanced AskTelstra GenAI RAG chatbot, reducing build costs by 88% and scaling to 15K+ frontline agents",
					"Automated NATAMA Fault Data Process saving 3M AUD annually and eliminating 28 days of manual effort monthly",
					"Developed ensemble ML model (XGBoost, GRU, Logistic Regression) for PII identification in SMS",
				},
			},
			{
				Company:     "Telstra",
				Position:    "Machine Learning Engineer",
				Location:    "Pune, Maharashtra, India",
				StartDate:   "2024-05",
				EndDate:     "2025-06",
				Description: "Enhanced AskTelstra RAG-based GenAI chatbot architecture, security, and performance. Streamlined deployment processes and improved system reliability.",
				Achievements: []string{
					"Introduced unit testing, backend authentication, and SSO using JWT tokens",
					"Streamlined weekly releases deploying to 1,500 agents with scaling to 5,000",
					"Recognized as Data-engineering India Achiever of the Month (Jan 2025)",
				},
			},
			{
				Company:     "Telstra",
				Position:    "Senior Associate Software Developer",
				Location:    "Pune, Maharashtra, India",
				StartDate:   "2022-10",
				EndDate:     "2024-04",
				Description: "ML Developer and Java Developer building scalable email segregation systems and owning the API development platform.",
				Achievements: []string{
					"Implemented connection pooling for the APIs improving latency and response time by over 500%",
					"Built email segregation systems across the full ML development lifecycle",
					"Mentored junior developers on building fault-tolerant APIs",
				},
			},
			{
				Company:     "Telstra",
				Position:    "Associate Software Engineer",
				Location:    "India",
				StartDate:   "2021-07",
				EndDate:     "2022-10",
				Description: "Chatbot Developer and Java Developer delivering automated chat flows and scalable Spring Boot APIs. Developed NLP models for sentiment analysis and topic modeling.",
				Achievements: []string{
					"Developed a Google widget that saves 50% time in development and testing",
					"Developed scalable Spring Boot APIs and deployed them on Azure instances",
				},
			},
		},
		Education: []Education{
			{
				Institution:  "Veermata Jijabai Technological Institute (VJTI)",
				Degree:       "Bachelor of Technology",
				FieldOfStudy: "Computer Science",
				Location:     "Mumbai, India",
				StartDate:    "2017",
				EndDate:      "2021",
			},
		},
		Skills: []Skill{
			{Name: "Large Language Models (LLM)", Category: CategoryGenAI, Proficiency: "Expert"},
			{Name: "RAG (Retrieval Augmented Generation)", Category: CategoryGenAI, Proficiency: "Expert"},
			{Name: "LangChain", Category: CategoryGenAI, Proficiency: "Expert"},
			{Name: "LangGraph", Category: CategoryGenAI, Proficiency: "Expert"},
			{Name: "Prompt Engineering", Category: CategoryGenAI, Proficiency: "Expert"},
			{Name: "Ollama", Category: CategoryGenAI, Proficiency: "Expert"},
			{Name: "Machine Learning", Category: CategoryAIML, Proficiency: "Expert"},
			{Name: "Deep Learning", Category: CategoryAIML, Proficiency: "Expert"},
			{Name: "Natural Language Processing (NLP)", Category: CategoryAIML, Proficiency: "Expert"},
			{Name: "XGBoost", Category: CategoryAIML, Proficiency: "Expert"},
			{Name: "Python", Category: CategoryProgramming, Proficiency: "Expert"},
			{Name: "Java", Category: CategoryProgramming, Proficiency: "Expert"},
			{Name: "PyTorch", Category: CategoryFrameworks, Proficiency: "Expert"},
			{Name: "FastAPI", Category: CategoryFrameworks, Proficiency: "Expert"},
			{Name: "Spring Boot", Category: CategoryFrameworks, Proficiency: "Expert"},
			{Name: "React.js", Category: CategoryFrameworks, Proficiency: "Expert"},
			{Name: "FAISS", Category: CategoryDatabases, Proficiency: "Expert"},
			{Name: "ChromaDB", Category: CategoryDatabases, Proficiency: "Expert"},
			{Name: "Azure", Category: CategoryCloudDevOps, Proficiency: "Expert"},
			{Name: "Docker", Category: CategoryCloudDevOps, Proficiency: "Advanced"},
		},
		Projects: []Project{
			{
				Name:         "AskTelstra",
				Description:  "Enterprise GenAI RAG chatbot serving 8000+ daily queries across frontline agents.",
				Technologies: []string{"Python", "RAG", "Azure", "LangChain"},
				Highlights:   []string{"Reduced build costs by 88%", "Scaled to 15K+ frontline agents"},
			},
			{
				Name:         "GenAI Call Drivers",
				Description:  "Automated call analysis pipeline processing 25K calls per day and surfacing insights to the board of directors.",
				Technologies: []string{"Azure Data Factory", "AzureML", "PowerBI"},
			},
			{
				Name:         "NATAMA Automation",
				Description:  "Fault data process automation saving 3M AUD annually and eliminating 28 days of manual effort monthly.",
				Technologies: []string{"Python", "Machine Learning"},
			},
		},
		Certifications: []Certification{
			{Name: "Deep Learning Specialization", Issuer: "Coursera", IssueDate: "2020-06"},
			{Name: "Data Science Specialization", Issuer: "Coursera", IssueDate: "2020-09"},
		},
		Awards: []Award{
			{Title: "Team Award FY24 Q4", Issuer: "Telstra", Date: "2024-06"},
			{Title: "Data-engineering India Achiever of the Month", Issuer: "Telstra", Date: "2025-01"},
		},
		Languages: []string{"English", "Hindi"},
	}
}
