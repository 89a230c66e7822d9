package v1alpha1

func StringToComplexityLevel(s string) ComplexityLevel {
	switch s {
	case string(ComplexityLow):
		return ComplexityLow
	case string(ComplexityMedium):
		return ComplexityMedium
	case string(ComplexityHigh):
		return ComplexityHigh
	default:
		return ComplexityMedium
	}
}

func StringToStrategyType(s string) StrategyType {
	switch s {
	case string(StrategyRehost):
		return StrategyRehost
	case string(StrategyReplatform):
		return StrategyReplatform
	case string(StrategyRefactor):
		return StrategyRefactor
	default:
		return StrategyRehost
	}
}

func StringToRiskLevel(s string) RiskLevel {
	switch s {
	case string(RiskLow):
		return RiskLow
	case string(RiskMedium):
		return RiskMedium
	case string(RiskHigh):
		return RiskHigh
	default:
		return RiskMedium
	}
}

func StringToCriticality(s string) Criticality {
	switch s {
	case string(CriticalityLow):
		return CriticalityLow
	case string(CriticalityMedium):
		return CriticalityMedium
	case string(CriticalityHigh):
		return CriticalityHigh
	case string(CriticalityCritical):
		return CriticalityCritical
	default:
		return CriticalityLow
	}
}

func StringToDependencyType(s string) DependencyType {
	switch s {
	case string(DependencyDatabase):
		return DependencyDatabase
	case string(DependencyCache):
		return DependencyCache
	case string(DependencyMessaging):
		return DependencyMessaging
	case string(DependencyStorage):
		return DependencyStorage
	default:
		return DependencyOther
	}
}

// IsValidCriticality reports whether s names a known criticality rank.
func IsValidCriticality(s string) bool {
	switch Criticality(s) {
	case CriticalityLow, CriticalityMedium, CriticalityHigh, CriticalityCritical:
		return true
	default:
		return false
	}
}

// IsValidDependencyType reports whether s names a known dependency kind.
func IsValidDependencyType(s string) bool {
	switch DependencyType(s) {
	case DependencyDatabase, DependencyCache, DependencyMessaging, DependencyStorage, DependencyOther:
		return true
	default:
		return false
	}
}
