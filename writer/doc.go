// Package writer serializes documents as PDF files.
//
// A [Document] is a list of pages, each with an uncompressed content stream,
// the standard fonts it references and any image XObjects it paints:
//
//	doc := &writer.Document{Info: map[string]string{"Producer": "circlepoints"}}
//	page := doc.AddPage(841.89, 595.28)
//	page.Fonts = []*font.Standard{font.Helvetica("F1")}
//	page.Contents = contentstream.NewBuilder().Text("F1", 10, 30, 30, "Hi").Bytes()
//
//	if err := writer.New(file).Write(doc); err != nil {
//	    // handle error
//	}
//
// Content streams are Flate-compressed. Objects are numbered in a fixed
// order (catalog, page tree, then per page fonts, images, contents and page
// object) and dictionaries are written with sorted keys, so writing the same
// Document twice yields identical bytes.
package writer
