package pptx

import (
	"fmt"
	"strings"
	"time"
)

// XML namespaces and relationship types used in PPTX packages.
const (
	nsContentTypes = "http://schemas.openxmlformats.org/package/2006/content-types"
	nsPackageRels  = "http://schemas.openxmlformats.org/package/2006/relationships"
	nsDrawingML    = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsPresentation = "http://schemas.openxmlformats.org/presentationml/2006/main"
	nsDocRels      = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"

	relTypeOfficeDocument = nsDocRels + "/officeDocument"
	relTypeCoreProps      = "http://schemas.openxmlformats.org/package/2006/relationships/metadata/core-properties"
	relTypeExtendedProps  = nsDocRels + "/extended-properties"
	relTypeSlideMaster    = nsDocRels + "/slideMaster"
	relTypeSlideLayout    = nsDocRels + "/slideLayout"
	relTypeSlide          = nsDocRels + "/slide"
	relTypeTheme          = nsDocRels + "/theme"
	relTypeImage          = nsDocRels + "/image"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// slide namespace attribute triple shared by every presentationml part.
const pmlNamespaces = `xmlns:a="` + nsDrawingML + `" xmlns:r="` + nsDocRels + `" xmlns:p="` + nsPresentation + `"`

// contentTypesXML declares every part in the package.
func (p *Presentation) contentTypesXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Types xmlns="` + nsContentTypes + `">`)
	b.WriteString(`<Default Extension="rels" ContentType="application/vnd.openxmlformats-package.relationships+xml"/>`)
	b.WriteString(`<Default Extension="xml" ContentType="application/xml"/>`)
	b.WriteString(`<Default Extension="png" ContentType="image/png"/>`)
	b.WriteString(`<Default Extension="jpeg" ContentType="image/jpeg"/>`)
	b.WriteString(`<Override PartName="/ppt/presentation.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.presentation.main+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideMasters/slideMaster1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideMaster+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/slideLayouts/slideLayout1.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slideLayout+xml"/>`)
	b.WriteString(`<Override PartName="/ppt/theme/theme1.xml" ContentType="application/vnd.openxmlformats-officedocument.theme+xml"/>`)
	for i := range p.slides {
		fmt.Fprintf(&b, `<Override PartName="/ppt/slides/slide%d.xml" ContentType="application/vnd.openxmlformats-officedocument.presentationml.slide+xml"/>`, i+1)
	}
	b.WriteString(`<Override PartName="/docProps/core.xml" ContentType="application/vnd.openxmlformats-package.core-properties+xml"/>`)
	b.WriteString(`<Override PartName="/docProps/app.xml" ContentType="application/vnd.openxmlformats-officedocument.extended-properties+xml"/>`)
	b.WriteString(`</Types>`)
	return b.String()
}

// rootRelsXML wires the package root to the presentation and doc properties.
const rootRelsXML = xmlHeader +
	`<Relationships xmlns="` + nsPackageRels + `">` +
	`<Relationship Id="rId1" Type="` + relTypeOfficeDocument + `" Target="ppt/presentation.xml"/>` +
	`<Relationship Id="rId2" Type="` + relTypeCoreProps + `" Target="docProps/core.xml"/>` +
	`<Relationship Id="rId3" Type="` + relTypeExtendedProps + `" Target="docProps/app.xml"/>` +
	`</Relationships>`

// presentationXML lists the master, the slides in order, and the canvas size.
func (p *Presentation) presentationXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<p:presentation ` + pmlNamespaces + `>`)
	b.WriteString(`<p:sldMasterIdLst><p:sldMasterId id="2147483648" r:id="rId1"/></p:sldMasterIdLst>`)
	b.WriteString(`<p:sldIdLst>`)
	for i := range p.slides {
		// Slide IDs start at 256 per ECMA-376; rId1 is the master.
		fmt.Fprintf(&b, `<p:sldId id="%d" r:id="rId%d"/>`, 256+i, 2+i)
	}
	b.WriteString(`</p:sldIdLst>`)
	fmt.Fprintf(&b, `<p:sldSz cx="%d" cy="%d"/>`, p.width, p.height)
	b.WriteString(`<p:notesSz cx="6858000" cy="9144000"/>`)
	b.WriteString(`</p:presentation>`)
	return b.String()
}

// presentationRelsXML wires the presentation to its master, slides, and theme.
func (p *Presentation) presentationRelsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="` + nsPackageRels + `">`)
	b.WriteString(`<Relationship Id="rId1" Type="` + relTypeSlideMaster + `" Target="slideMasters/slideMaster1.xml"/>`)
	for i := range p.slides {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="slides/slide%d.xml"/>`, 2+i, relTypeSlide, i+1)
	}
	fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="theme/theme1.xml"/>`, 2+len(p.slides), relTypeTheme)
	b.WriteString(`</Relationships>`)
	return b.String()
}

// emptySpTree is the minimal shape tree required in masters and layouts.
const emptySpTree = `<p:spTree>` +
	`<p:nvGrpSpPr><p:cNvPr id="1" name=""/><p:cNvGrpSpPr/><p:nvPr/></p:nvGrpSpPr>` +
	`<p:grpSpPr/>` +
	`</p:spTree>`

// slideMasterXML is a bare master: empty shape tree, standard color map,
// one layout.
const slideMasterXML = xmlHeader +
	`<p:sldMaster ` + pmlNamespaces + `>` +
	`<p:cSld>` + emptySpTree + `</p:cSld>` +
	`<p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>` +
	`<p:sldLayoutIdLst><p:sldLayoutId id="2147483649" r:id="rId1"/></p:sldLayoutIdLst>` +
	`</p:sldMaster>`

const slideMasterRelsXML = xmlHeader +
	`<Relationships xmlns="` + nsPackageRels + `">` +
	`<Relationship Id="rId1" Type="` + relTypeSlideLayout + `" Target="../slideLayouts/slideLayout1.xml"/>` +
	`<Relationship Id="rId2" Type="` + relTypeTheme + `" Target="../theme/theme1.xml"/>` +
	`</Relationships>`

// slideLayoutXML is a single blank layout; every slide positions its own
// shapes absolutely.
const slideLayoutXML = xmlHeader +
	`<p:sldLayout ` + pmlNamespaces + ` type="blank" preserve="1">` +
	`<p:cSld name="Blank">` + emptySpTree + `</p:cSld>` +
	`<p:clrMapOvr><a:masterClrMapping/></p:clrMapOvr>` +
	`</p:sldLayout>`

const slideLayoutRelsXML = xmlHeader +
	`<Relationships xmlns="` + nsPackageRels + `">` +
	`<Relationship Id="rId1" Type="` + relTypeSlideMaster + `" Target="../slideMasters/slideMaster1.xml"/>` +
	`</Relationships>`

// themeXML emits an Office-compatible theme with the presentation typeface
// as both major and minor font. The color scheme is neutral; slides carry
// their own explicit fills.
func (p *Presentation) themeXML() string {
	font := escapeXML(p.font)

	fill := `<a:solidFill><a:schemeClr val="phClr"/></a:solidFill>`
	line := `<a:ln w="9525" cap="flat"><a:solidFill><a:schemeClr val="phClr"/></a:solidFill><a:prstDash val="solid"/></a:ln>`
	effect := `<a:effectStyle><a:effectLst/></a:effectStyle>`

	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<a:theme xmlns:a="` + nsDrawingML + `" name="Deck">`)
	b.WriteString(`<a:themeElements>`)
	b.WriteString(`<a:clrScheme name="Deck">`)
	b.WriteString(`<a:dk1><a:sysClr val="windowText" lastClr="000000"/></a:dk1>`)
	b.WriteString(`<a:lt1><a:sysClr val="window" lastClr="FFFFFF"/></a:lt1>`)
	b.WriteString(`<a:dk2><a:srgbClr val="1F2937"/></a:dk2>`)
	b.WriteString(`<a:lt2><a:srgbClr val="E2E8F0"/></a:lt2>`)
	b.WriteString(`<a:accent1><a:srgbClr val="F59E0B"/></a:accent1>`)
	b.WriteString(`<a:accent2><a:srgbClr val="0EA5E9"/></a:accent2>`)
	b.WriteString(`<a:accent3><a:srgbClr val="10B981"/></a:accent3>`)
	b.WriteString(`<a:accent4><a:srgbClr val="8B5CF6"/></a:accent4>`)
	b.WriteString(`<a:accent5><a:srgbClr val="EF4444"/></a:accent5>`)
	b.WriteString(`<a:accent6><a:srgbClr val="F97316"/></a:accent6>`)
	b.WriteString(`<a:hlink><a:srgbClr val="0563C1"/></a:hlink>`)
	b.WriteString(`<a:folHlink><a:srgbClr val="954F72"/></a:folHlink>`)
	b.WriteString(`</a:clrScheme>`)
	fmt.Fprintf(&b, `<a:fontScheme name="Deck"><a:majorFont><a:latin typeface="%s"/><a:ea typeface=""/><a:cs typeface=""/></a:majorFont><a:minorFont><a:latin typeface="%s"/><a:ea typeface=""/><a:cs typeface=""/></a:minorFont></a:fontScheme>`, font, font)
	b.WriteString(`<a:fmtScheme name="Deck">`)
	b.WriteString(`<a:fillStyleLst>` + fill + fill + fill + `</a:fillStyleLst>`)
	b.WriteString(`<a:lnStyleLst>` + line + line + line + `</a:lnStyleLst>`)
	b.WriteString(`<a:effectStyleLst>` + effect + effect + effect + `</a:effectStyleLst>`)
	b.WriteString(`<a:bgFillStyleLst>` + fill + fill + fill + `</a:bgFillStyleLst>`)
	b.WriteString(`</a:fmtScheme>`)
	b.WriteString(`</a:themeElements>`)
	b.WriteString(`</a:theme>`)
	return b.String()
}

// corePropsXML records document metadata.
func (p *Presentation) corePropsXML() string {
	now := time.Now().UTC().Format(time.RFC3339)
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<cp:coreProperties xmlns:cp="http://schemas.openxmlformats.org/package/2006/metadata/core-properties" xmlns:dc="http://purl.org/dc/elements/1.1/" xmlns:dcterms="http://purl.org/dc/terms/" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">`)
	fmt.Fprintf(&b, `<dc:title>%s</dc:title>`, escapeXML(p.title))
	fmt.Fprintf(&b, `<dcterms:created xsi:type="dcterms:W3CDTF">%s</dcterms:created>`, now)
	fmt.Fprintf(&b, `<dcterms:modified xsi:type="dcterms:W3CDTF">%s</dcterms:modified>`, now)
	b.WriteString(`</cp:coreProperties>`)
	return b.String()
}

// appPropsXML records the producing application and slide count.
func (p *Presentation) appPropsXML() string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Properties xmlns="http://schemas.openxmlformats.org/officeDocument/2006/extended-properties">`)
	b.WriteString(`<Application>go-deckgen</Application>`)
	fmt.Fprintf(&b, `<Slides>%d</Slides>`, len(p.slides))
	b.WriteString(`</Properties>`)
	return b.String()
}

// slideRelsXML wires one slide to the shared layout and its own media.
// mediaIndex is the deck-wide index of the slide's first picture.
func slideRelsXML(s *Slide, mediaIndex int) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	b.WriteString(`<Relationships xmlns="` + nsPackageRels + `">`)
	b.WriteString(`<Relationship Id="rId1" Type="` + relTypeSlideLayout + `" Target="../slideLayouts/slideLayout1.xml"/>`)
	for i, pic := range s.pictures {
		fmt.Fprintf(&b, `<Relationship Id="rId%d" Type="%s" Target="../media/image%d.%s"/>`, 2+i, relTypeImage, mediaIndex+i, pic.ext)
	}
	b.WriteString(`</Relationships>`)
	return b.String()
}

// escapeXML escapes text for use in XML content and attribute values.
func escapeXML(s string) string {
	return xmlReplacer.Replace(s)
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)
