// export.go

package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var appointmentHeaders = []string{"ID", "Type", "Name", "Date", "Time", "Notes", "BookedAt"}

// writeAppointmentsXLSX renders appointments as a single-sheet workbook.
func writeAppointmentsXLSX(w io.Writer, appts []Appointment) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Appointments")
	if err != nil {
		return err
	}

	headerRow := sheet.AddRow()
	for _, h := range appointmentHeaders {
		headerRow.AddCell().SetValue(h)
	}

	for _, ap := range appts {
		row := sheet.AddRow()
		row.AddCell().SetInt64(ap.ID)
		row.AddCell().SetValue(ap.Type)
		row.AddCell().SetValue(ap.Name)
		row.AddCell().SetValue(ap.Date)
		row.AddCell().SetValue(ap.Time)
		row.AddCell().SetValue(ap.Notes)
		row.AddCell().SetValue(ap.BookedAt.Format("2006-01-02 15:04:05"))
	}

	return file.Write(w)
}

func (a *API) exportAppointments(c *gin.Context) {
	appts := a.Appointments.List()

	// Nothing reaches the client until the whole workbook has rendered.
	var buf bytes.Buffer
	if err := a.renderXLSX(&buf, appts); err != nil {
		a.log.Error("appointment export failed", slog.Any("err", err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=appointments.xlsx")
	c.Header("Content-Transfer-Encoding", "binary")
	c.Header("Expires", "0")
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
	a.log.Info("appointments exported", slog.Int("rows", len(appts)))
}
