// Package document builds the two-page PDF export.
//
// Page 1 carries a title, an author/contact byline and the diagram image,
// scaled uniformly to the largest size that fits the page minus fixed
// margins (see [FitImage]). Page 2 lists the export parameters one per line
// followed by an attribution line.
//
//	png, _ := raster.Encode(d)
//	pdf, err := document.Export(png, model.NewExportParams(spec, "Ada", ""))
//	if errors.Is(err, document.ErrDocumentBuild) {
//	    // image bytes were unusable; nothing was produced
//	}
//
// Text is set in the standard Helvetica fonts with WinAnsi encoding, so the
// file embeds no fonts and references nothing outside itself. Lines wider
// than the page are cut with an ellipsis.
package document
