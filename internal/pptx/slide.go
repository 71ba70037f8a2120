package pptx

import (
	"fmt"
	"strings"
)

// slideXML emits one slide part: optional solid background, then text boxes
// and pictures in insertion order.
func (p *Presentation) slideXML(s *Slide) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:sld ` + pmlNamespaces + `>`)
	b.WriteString(`<p:cSld>`)

	if s.background != "" {
		fmt.Fprintf(&b, `<p:bg><p:bgPr><a:solidFill><a:srgbClr val="%s"/></a:solidFill><a:effectLst/></p:bgPr></p:bg>`, s.background)
	}

	b.WriteString(`<p:spTree>`)
	b.WriteString(`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>`)
	b.WriteString(`<p:grpSpPr/>`)

	// Shape IDs are slide-local; 1 is reserved for the group above.
	shapeID := 2
	for _, tb := range s.texts {
		p.writeTextBox(&b, tb, shapeID)
		shapeID++
	}
	for i, pic := range s.pictures {
		// Picture rels start at rId2; rId1 is the layout.
		writePicture(&b, pic, shapeID, 2+i)
		shapeID++
	}

	b.WriteString(`</p:spTree>`)
	b.WriteString(`</p:cSld>`)
	b.WriteString(`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>`)
	b.WriteString(`</p:sld>`)
	return b.String()
}

// writeTextBox emits a positioned text shape with one run per paragraph.
func (p *Presentation) writeTextBox(b *strings.Builder, tb TextBox, shapeID int) {
	font := tb.Font
	if font == "" {
		font = p.font
	}

	b.WriteString(`<p:sp>`)
	fmt.Fprintf(b, `<p:nvSpPr><p:cNvPr id="%d" name="TextBox %d"/><p:cNvSpPr txBox="1"/><p:nvPr/></p:nvSpPr>`, shapeID, shapeID-1)
	fmt.Fprintf(b, `<p:spPr>%s<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`, xfrmXML(tb.Box))

	b.WriteString(`<p:txBody>`)
	if tb.Anchor != "" {
		fmt.Fprintf(b, `<a:bodyPr wrap="square" anchor="%s"/>`, tb.Anchor)
	} else {
		b.WriteString(`<a:bodyPr wrap="square"/>`)
	}
	b.WriteString(`<a:lstStyle/>`)

	for _, para := range tb.Paragraphs {
		size := para.Size
		if size == 0 {
			size = defaultFontSize
		}

		b.WriteString(`<a:p><a:r>`)
		// Run sizes are in hundredths of a point.
		fmt.Fprintf(b, `<a:rPr lang="en-US" sz="%d"`, int(size*100))
		if para.Bold {
			b.WriteString(` b="1"`)
		}
		if para.Italic {
			b.WriteString(` i="1"`)
		}
		b.WriteString(`>`)
		if para.Color != "" {
			fmt.Fprintf(b, `<a:solidFill><a:srgbClr val="%s"/></a:solidFill>`, para.Color)
		}
		fmt.Fprintf(b, `<a:latin typeface="%s"/>`, escapeXML(font))
		b.WriteString(`</a:rPr>`)
		fmt.Fprintf(b, `<a:t>%s</a:t>`, escapeXML(para.Text))
		b.WriteString(`</a:r></a:p>`)
	}

	b.WriteString(`</p:txBody>`)
	b.WriteString(`</p:sp>`)
}

// writePicture emits a positioned picture referencing its media rel.
func writePicture(b *strings.Builder, pic picture, shapeID, relID int) {
	b.WriteString(`<p:pic>`)
	fmt.Fprintf(b, `<p:nvPicPr><p:cNvPr id="%d" name="Picture %d"/><p:cNvPicPr/><p:nvPr/></p:nvPicPr>`, shapeID, shapeID-1)
	fmt.Fprintf(b, `<p:blipFill><a:blip r:embed="rId%d"/><a:stretch><a:fillRect/></a:stretch></p:blipFill>`, relID)
	fmt.Fprintf(b, `<p:spPr>%s<a:prstGeom prst="rect"><a:avLst/></a:prstGeom></p:spPr>`, xfrmXML(pic.box))
	b.WriteString(`</p:pic>`)
}

// xfrmXML emits the shape transform for a box.
func xfrmXML(box Box) string {
	return fmt.Sprintf(`<a:xfrm><a:off x="%d" y="%d"/><a:ext cx="%d" cy="%d"/></a:xfrm>`,
		box.Left, box.Top, box.Width, box.Height)
}
