package activity

import "strings"

var csvHeader = []string{"Date", "Time", "User", "Action", "Summary", "Project", "Details"}

// ExportCSV renders records as deterministic CSV: header row plus one row
// per record, every field double-quoted with embedded quotes doubled.
func ExportCSV(records []Record) string {
	var b strings.Builder
	writeCSVRow(&b, csvHeader)
	for _, r := range records {
		t := r.CreatedAt.Local()
		writeCSVRow(&b, []string{
			t.Format("2006-01-02"),
			t.Format("15:04:05"),
			r.ActorName,
			string(r.Action),
			Summarize(r),
			r.EntityTitle,
			flattenChanges(r.Changes),
		})
	}
	return b.String()
}

func flattenChanges(changes Changes) string {
	parts := make([]string, 0, len(changes))
	for _, ch := range changes {
		parts = append(parts,
			FormatFieldName(ch.Field)+": "+
				FormatValue(ch.From, ch.Field)+" → "+
				FormatValue(ch.To, ch.Field))
	}
	return strings.Join(parts, "; ")
}

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
