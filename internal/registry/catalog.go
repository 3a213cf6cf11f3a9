package registry

import "github.com/sells-group/pulseboard/internal/model"

// BuiltIn returns the shipped vertical catalog. The returned slice is
// freshly allocated on each call; the module values inside are shared
// static data and must be treated as read-only.
func BuiltIn() []model.VerticalModule {
	return []model.VerticalModule{
		energyVertical,
		healthcareVertical,
		financeVertical,
		manufacturingVertical,
		retailVertical,
		logisticsVertical,
	}
}

var energyVertical = model.VerticalModule{
	ID:          "energy",
	Name:        "Energy & Utilities",
	Description: "Grid operations, generation mix, and outage readiness monitoring.",
	Features:    []string{"Grid Optimization", "Outage Prediction", "Load Forecasting", "Renewable Integration"},
	Regulations: []string{"NERC CIP", "FERC Order 881", "ISO 50001"},
	Agents:      []string{"GridSentinel", "LoadBalancer", "OutageScout"},
	UseCases: []model.UseCase{
		{
			ID:                "grid-stability",
			Name:              "Grid Stability Watch",
			Description:       "Continuous frequency and voltage envelope monitoring across interconnects.",
			Complexity:        model.ComplexityHigh,
			EstimatedDuration: "6 weeks",
			Scores:            model.ScoreAxes{Security: 92, Integrity: 88, Accuracy: 90},
		},
		{
			ID:                "demand-response",
			Name:              "Demand Response Dispatch",
			Description:       "Peak-shaving event coordination with commercial load partners.",
			Complexity:        model.ComplexityMedium,
			EstimatedDuration: "3 weeks",
			Scores:            model.ScoreAxes{Security: 78, Integrity: 85, Accuracy: 82},
		},
	},
	Metrics: []model.MetricConfig{
		{
			ID: "grid-uptime", Name: "Grid Uptime", Unit: "%",
			Threshold:     model.Threshold{Warning: 99.9, Critical: 99.5},
			Visualization: model.VisualizationGauge,
			Polarity:      model.HigherIsBetter,
		},
		{
			ID: "frequency-deviation", Name: "Frequency Deviation", Unit: "Hz",
			Threshold:     model.Threshold{Warning: 0.05, Critical: 0.1},
			Visualization: model.VisualizationLine,
			Polarity:      model.LowerIsBetter,
		},
		{
			ID: "renewable-share", Name: "Renewable Share", Unit: "%",
			Threshold:     model.Threshold{Warning: 25, Critical: 15},
			Visualization: model.VisualizationPie,
			Polarity:      model.HigherIsBetter,
		},
		{
			ID: "peak-load-margin", Name: "Peak Load Margin", Unit: "%",
			Threshold:     model.Threshold{Warning: 12, Critical: 6},
			Visualization: model.VisualizationBar,
			Polarity:      model.HigherIsBetter,
		},
	},
	Widgets: []string{"kpi-strip", "load-curve", "generation-mix", "outage-map"},
}

var healthcareVertical = model.VerticalModule{
	ID:          "healthcare",
	Name:        "Healthcare",
	Description: "Clinical operations, patient flow, and record-integrity monitoring.",
	Features:    []string{"Patient Flow", "EHR Sync Monitoring", "Care Plan Adherence", "Capacity Planning"},
	Regulations: []string{"HIPAA", "HL7 FHIR R4", "HITECH"},
	Agents:      []string{"TriageAssist", "RecordKeeper"},
	UseCases: []model.UseCase{
		{
			ID:                "patient-flow",
			Name:              "Patient Flow Optimization",
			Description:       "Admission-to-discharge throughput tracking across departments.",
			Complexity:        model.ComplexityMedium,
			EstimatedDuration: "4 weeks",
			Scores:            model.ScoreAxes{Security: 95, Integrity: 91, Accuracy: 84},
		},
		{
			ID:                "record-integrity",
			Name:              "Record Integrity Audit",
			Description:       "Cross-system EHR consistency checks with drift detection.",
			Complexity:        model.ComplexityHigh,
			EstimatedDuration: "8 weeks",
			Scores:            model.ScoreAxes{Security: 97, Integrity: 96, Accuracy: 89},
		},
	},
	Metrics: []model.MetricConfig{
		{
			ID: "bed-availability", Name: "Bed Availability", Unit: "%",
			Threshold:     model.Threshold{Warning: 15, Critical: 8},
			Visualization: model.VisualizationGauge,
			Polarity:      model.HigherIsBetter,
		},
		{
			ID: "er-wait-time", Name: "ER Wait Time", Unit: "min",
			Threshold:     model.Threshold{Warning: 45, Critical: 90},
			Visualization: model.VisualizationLine,
			Polarity:      model.LowerIsBetter,
		},
		{
			ID: "ehr-sync-latency", Name: "EHR Sync Latency", Unit: "s",
			Threshold:     model.Threshold{Warning: 30, Critical: 120},
			Visualization: model.VisualizationBar,
			Polarity:      model.LowerIsBetter,
		},
		{
			ID: "care-plan-adherence", Name: "Care Plan Adherence", Unit: "%",
			Threshold:     model.Threshold{Warning: 85, Critical: 70},
			Visualization: model.VisualizationGauge,
			Polarity:      model.HigherIsBetter,
		},
	},
	Widgets: []string{"kpi-strip", "department-load", "admission-trend"},
}

var financeVertical = model.VerticalModule{
	ID:          "finance",
	Name:        "Financial Services",
	Description: "Transaction health, fraud posture, and settlement monitoring.",
	Features:    []string{"Fraud Detection", "Settlement Tracking", "Liquidity Monitoring", "Trade Surveillance"},
	Regulations: []string{"SOX", "PCI DSS", "Basel III", "MiFID II"},
	Agents:      []string{"FraudHawk", "LedgerWatch", "SettleBot"},
	UseCases: []model.UseCase{
		{
			ID:                "fraud-screening",
			Name:              "Real-Time Fraud Screening",
			Description:       "Inline transaction scoring with case escalation.",
			Complexity:        model.ComplexityHigh,
			EstimatedDuration: "10 weeks",
			Scores:            model.ScoreAxes{Security: 98, Integrity: 93, Accuracy: 87},
		},
		{
			ID:                "settlement-health",
			Name:              "Settlement Health",
			Description:       "T+1 settlement pipeline tracking with breach alerts.",
			Complexity:        model.ComplexityMedium,
			EstimatedDuration: "5 weeks",
			Scores:            model.ScoreAxes{Security: 90, Integrity: 94, Accuracy: 91},
		},
	},
	Metrics: []model.MetricConfig{
		{
			ID: "txn-success-rate", Name: "Transaction Success Rate", Unit: "%",
			Threshold:     model.Threshold{Warning: 99.5, Critical: 98.0},
			Visualization: model.VisualizationGauge,
			Polarity:      model.HigherIsBetter,
		},
		{
			ID: "fraud-alert-rate", Name: "Fraud Alert Rate", Unit: "bps",
			Threshold:     model.Threshold{Warning: 25, Critical: 60},
			Visualization: model.VisualizationLine,
			Polarity:      model.LowerIsBetter,
		},
		{
			ID: "settlement-latency", Name: "Settlement Latency", Unit: "h",
			Threshold:     model.Threshold{Warning: 20, Critical: 28},
			Visualization: model.VisualizationBar,
			Polarity:      model.LowerIsBetter,
		},
		{
			ID: "liquidity-coverage", Name: "Liquidity Coverage Ratio", Unit: "%",
			Threshold:     model.Threshold{Warning: 110, Critical: 100},
			Visualization: model.VisualizationGauge,
			Polarity:      model.HigherIsBetter,
		},
	},
	Widgets: []string{"kpi-strip", "txn-volume", "fraud-heat", "settlement-funnel"},
}

var manufacturingVertical = model.VerticalModule{
	ID:          "manufacturing",
	Name:        "Manufacturing",
	Description: "Line efficiency, quality yield, and downtime monitoring.",
	Features:    []string{"OEE Tracking", "Predictive Maintenance", "Quality Yield", "Supply Chain Sync"},
	Regulations: []string{"ISO 9001", "OSHA 1910", "IEC 62443"},
	Agents:      []string{"LineMinder", "QualityGate"},
	UseCases: []model.UseCase{
		{
			ID:                "oee-improvement",
			Name:              "OEE Improvement",
			Description:       "Availability, performance, and quality decomposition per line.",
			Complexity:        model.ComplexityMedium,
			EstimatedDuration: "4 weeks",
			Scores:            model.ScoreAxes{Security: 72, Integrity: 88, Accuracy: 92},
		},
		{
			ID:                "predictive-maintenance",
			Name:              "Predictive Maintenance",
			Description:       "Vibration and thermal anomaly detection ahead of failure.",
			Complexity:        model.ComplexityHigh,
			EstimatedDuration: "9 weeks",
			Scores:            model.ScoreAxes{Security: 75, Integrity: 86, Accuracy: 89},
		},
	},
	Metrics: []model.MetricConfig{
		{
			ID: "oee", Name: "Overall Equipment Effectiveness", Unit: "%",
			Threshold:     model.Threshold{Warning: 75, Critical: 60},
			Visualization: model.VisualizationGauge,
			Polarity:      model.HigherIsBetter,
		},
		{
			ID: "defect-rate", Name: "Defect Rate", Unit: "ppm",
			Threshold:     model.Threshold{Warning: 300, Critical: 800},
			Visualization: model.VisualizationLine,
			Polarity:      model.LowerIsBetter,
		},
		{
			ID: "unplanned-downtime", Name: "Unplanned Downtime", Unit: "h/wk",
			Threshold:     model.Threshold{Warning: 4, Critical: 10},
			Visualization: model.VisualizationBar,
			Polarity:      model.LowerIsBetter,
		},
	},
	Widgets: []string{"kpi-strip", "line-oee", "defect-pareto"},
}

var retailVertical = model.VerticalModule{
	ID:          "retail",
	Name:        "Retail & E-Commerce",
	Description: "Conversion funnel, inventory accuracy, and fulfillment monitoring.",
	Features:    []string{"Conversion Funnel", "Inventory Sync", "Fulfillment SLA", "Dynamic Pricing"},
	Regulations: []string{"PCI DSS", "GDPR", "CCPA"},
	Agents:      []string{"ShelfWatch", "FunnelTuner"},
	UseCases: []model.UseCase{
		{
			ID:                "cart-recovery",
			Name:              "Cart Abandonment Recovery",
			Description:       "Session drop-off analysis with re-engagement triggers.",
			Complexity:        model.ComplexityLow,
			EstimatedDuration: "2 weeks",
			Scores:            model.ScoreAxes{Security: 68, Integrity: 74, Accuracy: 81},
		},
	},
	Metrics: []model.MetricConfig{
		{
			ID: "conversion-rate", Name: "Conversion Rate", Unit: "%",
			Threshold:     model.Threshold{Warning: 2.5, Critical: 1.5},
			Visualization: model.VisualizationLine,
			Polarity:      model.HigherIsBetter,
		},
		{
			ID: "cart-abandonment", Name: "Cart Abandonment", Unit: "%",
			Threshold:     model.Threshold{Warning: 70, Critical: 82},
			Visualization: model.VisualizationBar,
			Polarity:      model.LowerIsBetter,
		},
		{
			ID: "inventory-accuracy", Name: "Inventory Accuracy", Unit: "%",
			Threshold:     model.Threshold{Warning: 97, Critical: 93},
			Visualization: model.VisualizationGauge,
			Polarity:      model.HigherIsBetter,
		},
	},
	Widgets: []string{"kpi-strip", "funnel", "sku-velocity"},
}

var logisticsVertical = model.VerticalModule{
	ID:          "logistics",
	Name:        "Logistics & Fleet",
	Description: "Delivery performance, fleet utilization, and fuel efficiency monitoring.",
	Features:    []string{"Route Optimization", "Fleet Telematics", "Cold Chain Integrity", "Delivery SLA"},
	Regulations: []string{"DOT HOS", "C-TPAT", "IMO 2020"},
	Agents:      []string{"RouteScout", "FleetPulse"},
	UseCases: []model.UseCase{
		{
			ID:                "on-time-delivery",
			Name:              "On-Time Delivery",
			Description:       "Last-mile SLA tracking with weather and traffic overlays.",
			Complexity:        model.ComplexityMedium,
			EstimatedDuration: "3 weeks",
			Scores:            model.ScoreAxes{Security: 70, Integrity: 83, Accuracy: 88},
		},
	},
	Metrics: []model.MetricConfig{
		{
			ID: "on-time-rate", Name: "On-Time Delivery Rate", Unit: "%",
			Threshold:     model.Threshold{Warning: 94, Critical: 88},
			Visualization: model.VisualizationGauge,
			Polarity:      model.HigherIsBetter,
		},
		{
			ID: "fleet-idle-time", Name: "Fleet Idle Time", Unit: "%",
			Threshold:     model.Threshold{Warning: 18, Critical: 30},
			Visualization: model.VisualizationBar,
			Polarity:      model.LowerIsBetter,
		},
		{
			ID: "fuel-efficiency", Name: "Fuel Efficiency", Unit: "km/L",
			Threshold:     model.Threshold{Warning: 3.2, Critical: 2.6},
			Visualization: model.VisualizationLine,
			Polarity:      model.HigherIsBetter,
		},
	},
	Widgets: []string{"kpi-strip", "route-map", "fleet-utilization"},
}
