package reducers

// Catalog returns the built-in step types offered in the sidebar.
func Catalog() []SidebarItem {
	return []SidebarItem{
		{ID: "source-csv", Label: "CSV file", Kind: StepSource},
		{ID: "source-json", Label: "JSON file", Kind: StepSource},
		{ID: "source-excel", Label: "Excel workbook", Kind: StepSource},
		{ID: "source-jdbc", Label: "JDBC query", Kind: StepSource},
		{ID: "transform-sql", Label: "SQL transform", Kind: StepTransform},
		{ID: "transform-join", Label: "Join datasets", Kind: StepTransform},
		{ID: "transform-concat", Label: "Concatenate datasets", Kind: StepTransform},
		{ID: "destination-csv", Label: "CSV export", Kind: StepDestination},
		{ID: "destination-jdbc", Label: "JDBC table", Kind: StepDestination},
		{ID: "viz-bar", Label: "Bar chart", Kind: StepVisualize},
		{ID: "viz-line", Label: "Line chart", Kind: StepVisualize},
	}
}
