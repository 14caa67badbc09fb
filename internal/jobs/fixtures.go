package jobs

import "jobmate/listing-service/internal/model"

func money(v float64) *float64 { return &v }

// Fixtures is the fictitious posting set written by the seed operation,
// in insertion order.
var Fixtures = []model.SeedJob{
	{
		Title:            "Senior Frontend Engineer",
		Company:          "BlueWave Tech",
		Region:           "Lima",
		Category:         "Technology",
		Type:             "Full Time",
		SalaryMin:        money(4000),
		SalaryMax:        money(5500),
		SalaryCurrency:   "USD",
		ShortDescription: "Lead the frontend of our SaaS analytics platform using React and TypeScript.",
		Description:      "We are looking for a Senior Frontend Engineer to own the user interface of our analytics platform. You will work closely with designers and backend engineers to ship high-quality, performant experiences.",
		Tags:             []string{"React", "TypeScript", "SaaS", "Leadership"},
	},
	{
		Title:            "Backend Developer",
		Company:          "DataCore Solutions",
		Region:           "Arequipa",
		Category:         "Technology",
		Type:             "Full Time",
		SalaryMin:        money(3500),
		SalaryMax:        money(4500),
		SalaryCurrency:   "USD",
		ShortDescription: "Build scalable APIs and microservices with Node.js and PostgreSQL.",
		Description:      "Join our backend team to develop robust APIs that power our fintech platform. Experience with Node.js, Express, and relational databases required.",
		Tags:             []string{"Node.js", "PostgreSQL", "APIs", "Microservices"},
	},
	{
		Title:            "UX/UI Designer",
		Company:          "Creative Studio Peru",
		Region:           "Lima",
		Category:         "Design",
		Type:             "Full Time",
		SalaryMin:        money(2500),
		SalaryMax:        money(3500),
		SalaryCurrency:   "USD",
		ShortDescription: "Create beautiful and intuitive user experiences for mobile apps.",
		Description:      "We need a talented designer to lead the visual design of our mobile applications. Proficiency in Figma and understanding of design systems is essential.",
		Tags:             []string{"Figma", "Mobile", "Design Systems", "Prototyping"},
	},
	{
		Title:            "Data Analyst",
		Company:          "Analytics Pro",
		Region:           "Cusco",
		Category:         "Technology",
		Type:             "Part Time",
		SalaryMin:        money(1800),
		SalaryMax:        money(2500),
		SalaryCurrency:   "USD",
		ShortDescription: "Analyze business data and create insightful reports and dashboards.",
		Description:      "Help our clients make data-driven decisions by analyzing datasets, creating visualizations, and presenting findings to stakeholders.",
		Tags:             []string{"SQL", "Python", "Tableau", "Excel"},
	},
	{
		Title:            "Marketing Manager",
		Company:          "GrowthLab",
		Region:           "Lima",
		Category:         "Marketing",
		Type:             "Full Time",
		SalaryMin:        money(3000),
		SalaryMax:        money(4000),
		SalaryCurrency:   "USD",
		ShortDescription: "Lead digital marketing strategies for B2B SaaS products.",
		Description:      "Drive growth through SEO, content marketing, and paid acquisition. You will manage a small team and work closely with sales.",
		Tags:             []string{"SEO", "Content Marketing", "B2B", "Team Management"},
	},
	{
		Title:            "DevOps Engineer",
		Company:          "CloudFirst",
		Region:           "Trujillo",
		Category:         "Technology",
		Type:             "Full Time",
		SalaryMin:        money(4500),
		SalaryMax:        money(6000),
		SalaryCurrency:   "USD",
		ShortDescription: "Manage cloud infrastructure and CI/CD pipelines on AWS.",
		Description:      "Build and maintain our cloud infrastructure, implement CI/CD pipelines, and ensure high availability of our services.",
		Tags:             []string{"AWS", "Docker", "Kubernetes", "CI/CD"},
	},
	{
		Title:            "Contador Senior",
		Company:          "FinanzasPlus",
		Region:           "Lima",
		Category:         "Finance",
		Type:             "Full Time",
		SalaryMin:        money(2800),
		SalaryMax:        money(3800),
		SalaryCurrency:   "PEN",
		ShortDescription: "Gestionar la contabilidad general y reportes financieros.",
		Description:      "Responsable de la contabilidad general, preparación de estados financieros, y cumplimiento tributario para clientes corporativos.",
		Tags:             []string{"Contabilidad", "NIIF", "SAP", "Tributación"},
	},
	{
		Title:            "Customer Success Manager",
		Company:          "TechSupport Inc",
		Region:           "Arequipa",
		Category:         "Sales",
		Type:             "Full Time",
		SalaryMin:        money(2200),
		SalaryMax:        money(3000),
		SalaryCurrency:   "USD",
		ShortDescription: "Ensure customer satisfaction and drive product adoption.",
		Description:      "Work directly with enterprise customers to ensure they get maximum value from our platform. Manage onboarding, training, and renewals.",
		Tags:             []string{"Customer Success", "SaaS", "Enterprise", "Communication"},
	},
	{
		Title:            "Mobile Developer (React Native)",
		Company:          "AppFactory",
		Region:           "Lima",
		Category:         "Technology",
		Type:             "Contract",
		SalaryMin:        money(3000),
		SalaryMax:        money(4000),
		SalaryCurrency:   "USD",
		ShortDescription: "Build cross-platform mobile apps with React Native.",
		Description:      "Join our team to develop and maintain mobile applications for iOS and Android using React Native. Experience with native modules is a plus.",
		Tags:             []string{"React Native", "iOS", "Android", "JavaScript"},
	},
	{
		Title:            "HR Generalist",
		Company:          "PeopleFirst",
		Region:           "Cusco",
		Category:         "Human Resources",
		Type:             "Part Time",
		SalaryMin:        money(1500),
		SalaryMax:        money(2000),
		SalaryCurrency:   "USD",
		ShortDescription: "Support HR operations including recruitment and employee relations.",
		Description:      "Handle day-to-day HR tasks including recruitment coordination, onboarding, employee inquiries, and maintaining HR records.",
		Tags:             []string{"Recruitment", "Onboarding", "Employee Relations", "HRIS"},
	},
	{
		Title:            "Product Manager",
		Company:          "InnovateTech",
		Region:           "Lima",
		Category:         "Technology",
		Type:             "Full Time",
		SalaryMin:        money(5000),
		SalaryMax:        money(7000),
		SalaryCurrency:   "USD",
		ShortDescription: "Define product vision and roadmap for our core platform.",
		Description:      "Lead product strategy, work with engineering and design teams, and drive the product lifecycle from concept to launch.",
		Tags:             []string{"Product Strategy", "Agile", "Roadmapping", "Stakeholder Management"},
	},
	{
		Title:            "Content Writer",
		Company:          "MediaHub",
		Region:           "Trujillo",
		Category:         "Marketing",
		Type:             "Remote",
		SalaryMin:        money(1200),
		SalaryMax:        money(1800),
		SalaryCurrency:   "USD",
		ShortDescription: "Create engaging content for blogs, social media, and newsletters.",
		Description:      "Write compelling content that drives engagement and supports our marketing goals. Strong writing skills in Spanish and English required.",
		Tags:             []string{"Copywriting", "SEO", "Social Media", "Bilingual"},
	},
}
