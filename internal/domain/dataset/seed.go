package dataset

import (
	"github.com/okian/talentiq/internal/domain/model"
	"github.com/okian/talentiq/internal/domain/types"
)

func seedEmployees() []model.Employee {
	return []model.Employee{
		{
			ID: "emp-001", Name: "Dr. Sarah Chen", Role: "Principal AI Architect", Department: "AI Research",
			Skills:      []string{"AI/ML Engineering", "Deep Learning", "Python"},
			Criticality: types.CriticalityCritical, Tenure: 5, AttritionRisk: 72,
			CompensationPercentile: 65, WorkloadStress: 85, LearningOpportunities: 40, CareerProgression: 35, OfferExposure: 90,
			IsKeyPerson: true,
		},
		{
			ID: "emp-002", Name: "Marcus Williams", Role: "Quantum Research Lead", Department: "Quantum Lab",
			Skills:      []string{"Quantum Computing", "Physics", "Python"},
			Criticality: types.CriticalityCritical, Tenure: 3, AttritionRisk: 85,
			CompensationPercentile: 55, WorkloadStress: 90, LearningOpportunities: 50, CareerProgression: 30, OfferExposure: 95,
			IsKeyPerson: true,
		},
		{
			ID: "emp-003", Name: "Elena Rodriguez", Role: "Senior Blockchain Engineer", Department: "Web3 Division",
			Skills:      []string{"Blockchain Development", "Solidity", "Rust"},
			Criticality: types.CriticalityHigh, Tenure: 4, AttritionRisk: 45,
			CompensationPercentile: 75, WorkloadStress: 60, LearningOpportunities: 70, CareerProgression: 65, OfferExposure: 60,
		},
		{
			ID: "emp-004", Name: "James O'Connor", Role: "Cloud Solutions Architect", Department: "Infrastructure",
			Skills:      []string{"Cloud Architecture", "AWS", "Kubernetes"},
			Criticality: types.CriticalityHigh, Tenure: 6, AttritionRisk: 35,
			CompensationPercentile: 80, WorkloadStress: 55, LearningOpportunities: 75, CareerProgression: 70, OfferExposure: 45,
		},
		{
			ID: "emp-005", Name: "Aisha Patel", Role: "Cybersecurity Director", Department: "Security",
			Skills:      []string{"Cybersecurity", "Penetration Testing", "Compliance"},
			Criticality: types.CriticalityCritical, Tenure: 7, AttritionRisk: 28,
			CompensationPercentile: 85, WorkloadStress: 70, LearningOpportunities: 60, CareerProgression: 75, OfferExposure: 55,
			IsKeyPerson: true,
		},
		{
			ID: "emp-006", Name: "David Kim", Role: "ML Engineer", Department: "AI Research",
			Skills:      []string{"AI/ML Engineering", "TensorFlow", "MLOps"},
			Criticality: types.CriticalityHigh, Tenure: 2, AttritionRisk: 58,
			CompensationPercentile: 60, WorkloadStress: 75, LearningOpportunities: 55, CareerProgression: 45, OfferExposure: 75,
		},
		{
			ID: "emp-007", Name: "Lisa Thompson", Role: "Senior Data Scientist", Department: "Analytics",
			Skills:      []string{"AI/ML Engineering", "Statistics", "Python"},
			Criticality: types.CriticalityMedium, Tenure: 4, AttritionRisk: 42,
			CompensationPercentile: 70, WorkloadStress: 65, LearningOpportunities: 65, CareerProgression: 55, OfferExposure: 50,
		},
		{
			ID: "emp-008", Name: "Robert Zhang", Role: "DevOps Engineer", Department: "Infrastructure",
			Skills:      []string{"Cloud Architecture", "CI/CD", "Terraform"},
			Criticality: types.CriticalityMedium, Tenure: 3, AttritionRisk: 38,
			CompensationPercentile: 72, WorkloadStress: 60, LearningOpportunities: 70, CareerProgression: 60, OfferExposure: 40,
		},
	}
}

func seedSkillGaps() []model.SkillGap {
	return []model.SkillGap{
		{Skill: "AI/ML Engineering", CurrentCapacity: 45, RequiredCapacity: 100, GapPercentage: 55, MarketScarcity: types.ScarcityExtreme,
			AvgHiringTime: 16, AvgSalary: 185000, TrainingCost: 25000, TrainingTime: 24},
		{Skill: "Quantum Computing", CurrentCapacity: 15, RequiredCapacity: 40, GapPercentage: 62.5, MarketScarcity: types.ScarcityExtreme,
			AvgHiringTime: 24, AvgSalary: 220000, TrainingCost: 45000, TrainingTime: 36},
		{Skill: "Blockchain Development", CurrentCapacity: 60, RequiredCapacity: 85, GapPercentage: 29.4, MarketScarcity: types.ScarcityHigh,
			AvgHiringTime: 12, AvgSalary: 165000, TrainingCost: 18000, TrainingTime: 16},
		{Skill: "Cloud Architecture", CurrentCapacity: 75, RequiredCapacity: 95, GapPercentage: 21.1, MarketScarcity: types.ScarcityMedium,
			AvgHiringTime: 8, AvgSalary: 155000, TrainingCost: 12000, TrainingTime: 12},
		{Skill: "Cybersecurity", CurrentCapacity: 55, RequiredCapacity: 90, GapPercentage: 38.9, MarketScarcity: types.ScarcityHigh,
			AvgHiringTime: 10, AvgSalary: 160000, TrainingCost: 15000, TrainingTime: 14},
	}
}

func seedTeams() []model.Team {
	return []model.Team{
		{ID: "team-001", Name: "AI Research", Members: []string{"emp-001", "emp-006", "emp-007"},
			KnowledgeConcentration: 78, CriticalSkills: []string{"AI/ML Engineering", "Deep Learning"}, BackupCoverage: 35},
		{ID: "team-002", Name: "Quantum Lab", Members: []string{"emp-002"},
			KnowledgeConcentration: 95, CriticalSkills: []string{"Quantum Computing"}, BackupCoverage: 10},
		{ID: "team-003", Name: "Web3 Division", Members: []string{"emp-003"},
			KnowledgeConcentration: 85, CriticalSkills: []string{"Blockchain Development", "Solidity"}, BackupCoverage: 25},
		{ID: "team-004", Name: "Infrastructure", Members: []string{"emp-004", "emp-008"},
			KnowledgeConcentration: 45, CriticalSkills: []string{"Cloud Architecture", "DevOps"}, BackupCoverage: 65},
		{ID: "team-005", Name: "Security", Members: []string{"emp-005"},
			KnowledgeConcentration: 80, CriticalSkills: []string{"Cybersecurity"}, BackupCoverage: 30},
	}
}

func seedTrends() []model.TrendPoint {
	return []model.TrendPoint{
		{Month: "Jul", TalentRisk: 58, Capability: 62, Retention: 78},
		{Month: "Aug", TalentRisk: 62, Capability: 58, Retention: 76},
		{Month: "Sep", TalentRisk: 65, Capability: 55, Retention: 74},
		{Month: "Oct", TalentRisk: 63, Capability: 52, Retention: 73},
		{Month: "Nov", TalentRisk: 66, Capability: 53, Retention: 71},
		{Month: "Dec", TalentRisk: 68, Capability: 54, Retention: 72},
	}
}

func seedCostComparison() []model.CostComparisonRow {
	return []model.CostComparisonRow{
		{Strategy: "External Hire", Cost: 185000, Time: 16, Risk: 65, Sustainability: 45},
		{Strategy: "Internal Upskill", Cost: 45000, Time: 24, Risk: 25, Sustainability: 85},
		{Strategy: "Contractor", Cost: 240000, Time: 4, Risk: 75, Sustainability: 20},
		{Strategy: "Role Redesign", Cost: 15000, Time: 8, Risk: 40, Sustainability: 70},
		{Strategy: "AI Augmentation", Cost: 80000, Time: 12, Risk: 35, Sustainability: 90},
	}
}

func seedDashboard() model.DashboardMetrics {
	return model.DashboardMetrics{
		TalentRiskIndex:          68,
		CapabilityReadinessScore: 54,
		HiringVsUpskilling:       model.HiringVsUpskilling{Hiring: 35, Upskilling: 65},
		RetentionStability:       72,
		AvgTimeToFill:            14,
		CriticalRolesOpen:        8,
		AtRiskEmployees:          4,
		BudgetUtilization:        78,
	}
}

// Departments offered when adding an employee.
var Departments = []string{
	"AI Research", "Quantum Lab", "Web3 Division", "Infrastructure", "Security",
	"Analytics", "Engineering", "Product", "Operations",
}

// CommonSkills offered when adding an employee.
var CommonSkills = []string{
	"AI/ML Engineering", "Deep Learning", "Python", "Quantum Computing", "Blockchain Development",
	"Cloud Architecture", "Cybersecurity", "AWS", "Kubernetes", "React", "TypeScript",
	"Data Science", "DevOps", "Project Management",
}
