package models

// NoCategory is the code carried by transactions of a dataset loaded
// without a category column.
const NoCategory = -1

// Column names of the card export.
const (
	ColumnDate     = "Date"
	ColumnCategory = "Category"
	ColumnAmount   = "Transaction Amount"
)

// File permissions
const (
	PermissionDirectory  = 0750
	PermissionReportFile = 0644
)

// DefaultCSVDelimiter separates fields in the card export and in CSV reports.
const DefaultCSVDelimiter = ','
