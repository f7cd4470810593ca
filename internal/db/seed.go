package db

import (
	"context"
	"fmt"
)

var seedFAQs = []FAQ{
	{
		Question: "What is the minimum CGPA required?",
		Answer:   "The minimum CGPA varies by company. Most companies require at least 6.0 CGPA. Check each drive for exact requirements.",
		Keywords: "cgpa,minimum,cutoff,criteria",
	},
	{
		Question: "When is the next placement drive?",
		Answer:   "Please check the Live Drives Feed on your dashboard for upcoming placement drives and their dates.",
		Keywords: "drive,next,when,schedule,date",
	},
	{
		Question: "Where is the interview venue?",
		Answer:   "Interview venues are updated drive-wise. Check your Interview Schedule on the dashboard.",
		Keywords: "venue,where,interview,location,place",
	},
	{
		Question: "How do I apply for a placement drive?",
		Answer:   "Go to Student Dashboard → Live Drives → Click Apply on an eligible drive.",
		Keywords: "apply,how,application,register",
	},
	{
		Question: "What is the selection process?",
		Answer:   "Typically: Aptitude Test → Technical Interview → HR Interview. Details vary by company.",
		Keywords: "process,selection,round,test,interview",
	},
	{
		Question: "How do I download my resume?",
		Answer:   "Go to Student Dashboard → Resume Wizard → Click Download PDF.",
		Keywords: "resume,download,pdf,cv",
	},
	{
		Question: "Can I contact alumni for referrals?",
		Answer:   "Yes! Visit the Alumni Portal to see job referrals and book mentorship slots.",
		Keywords: "alumni,referral,contact,mentor",
	},
	{
		Question: "What documents are needed for placement?",
		Answer:   "Mark sheets, ID proof, passport photos, and certificates. Check drive-specific requirements.",
		Keywords: "document,certificate,marksheet,needed",
	},
}

var seedMarketSkills = []MarketSkill{
	{
		JobRole:        "Data Analyst",
		RequiredSkills: []string{"Python", "SQL", "Excel", "PowerBI", "Tableau", "Statistics", "Data Visualization", "Pandas", "NumPy"},
		Insight:        "80% of selected Data Analysts had PowerBI skills. Strong SQL is the most common requirement.",
	},
	{
		JobRole:        "Software Engineer",
		RequiredSkills: []string{"Java", "Python", "C++", "Data Structures", "Algorithms", "Git", "REST APIs", "SQL", "System Design"},
		Insight:        "Problem-solving (DSA) is tested in 95% of SWE roles. Git is mandatory.",
	},
	{
		JobRole:        "Web Developer",
		RequiredSkills: []string{"HTML", "CSS", "JavaScript", "React", "Node.js", "SQL", "REST APIs", "Bootstrap", "Git"},
		Insight:        "React.js appears in 70% of web dev postings. Full-stack knowledge preferred.",
	},
	{
		JobRole:        "Data Scientist",
		RequiredSkills: []string{"Python", "Machine Learning", "Deep Learning", "TensorFlow", "SQL", "Statistics", "NLP", "Pandas", "Scikit-learn"},
		Insight:        "ML/DL experience required in 90% of DS roles. Kaggle portfolio adds significant value.",
	},
	{
		JobRole:        "DevOps Engineer",
		RequiredSkills: []string{"Linux", "Docker", "Kubernetes", "CI/CD", "Jenkins", "AWS", "Git", "Bash", "Terraform"},
		Insight:        "Cloud platform knowledge is required in 85% of DevOps positions.",
	},
	{
		JobRole:        "Business Analyst",
		RequiredSkills: []string{"Excel", "SQL", "PowerBI", "Communication", "Problem Solving", "Agile", "JIRA", "Data Analysis"},
		Insight:        "Communication skills rated critically important by 80% of BA hiring managers.",
	},
	{
		JobRole:        "Cybersecurity Analyst",
		RequiredSkills: []string{"Networking", "Linux", "Python", "Cryptography", "SIEM", "Ethical Hacking", "Firewalls", "CompTIA"},
		Insight:        "CompTIA Security+ increases selection chances by 60%.",
	},
	{
		JobRole:        "Mobile Developer",
		RequiredSkills: []string{"Android", "Kotlin", "Java", "iOS", "Swift", "Flutter", "React Native", "REST APIs", "Git"},
		Insight:        "Flutter and React Native cross-platform skills are trending upward in 2024.",
	},
}

// Seed loads the default FAQs and market skill profiles. Each table is
// seeded only when it is empty, so running it repeatedly is safe.
func (db *DB) Seed(ctx context.Context) error {
	faqCount, err := db.CountFAQs(ctx)
	if err != nil {
		return err
	}
	if faqCount == 0 {
		for i := range seedFAQs {
			f := seedFAQs[i]
			if err := db.CreateFAQ(ctx, &f); err != nil {
				return fmt.Errorf("failed to seed faqs: %w", err)
			}
		}
	}

	skillCount, err := db.CountMarketSkills(ctx)
	if err != nil {
		return err
	}
	if skillCount == 0 {
		for i := range seedMarketSkills {
			ms := seedMarketSkills[i]
			_, err := db.pool.Exec(ctx,
				`INSERT INTO market_skills (job_role, required_skills, insight)
				 VALUES ($1, $2, $3)`,
				ms.JobRole, ms.RequiredSkills, ms.Insight,
			)
			if err != nil {
				return fmt.Errorf("failed to seed market skills: %w", err)
			}
		}
	}

	return nil
}
