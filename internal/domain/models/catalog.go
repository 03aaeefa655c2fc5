package models

// SparePartCatalog is the fixed set of recommendations attached to
// predictions. Both the sample generator and the dataset loader draw from it;
// keep it the single source of truth rather than duplicating literals.
var SparePartCatalog = []SparePart{
	{Name: "Oil Filter", Price: 50000, Reason: "Dirty and clogged"},
	{Name: "Air Filter", Price: 75000, Reason: "Reduced performance"},
	{Name: "Spark Plug", Price: 25000, Reason: "Worn out"},
	{Name: "Chain", Price: 150000, Reason: "Stretched and worn"},
	{Name: "Brake Pads", Price: 100000, Reason: "Thin and worn"},
	{Name: "Coolant", Price: 45000, Reason: "Low level"},
	{Name: "Transmission Oil", Price: 80000, Reason: "Due for replacement"},
	{Name: "Battery", Price: 350000, Reason: "Low voltage"},
}

// SamplePhoneNumbers is the pool used when generating synthetic predictions.
var SamplePhoneNumbers = []string{
	"+62812345678", "+62823456789", "+62834567890",
	"+62845678901", "+62856789012", "+62867890123",
}
