package models

// WorkbookData is the extraction result for one sheet of a workbook.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// SheetName is the sheet the tables were read from.
	SheetName string `json:"sheet_name,omitempty"`
	// Tables lists extracted tables in scan order.
	Tables []Table `json:"tables"`
}
