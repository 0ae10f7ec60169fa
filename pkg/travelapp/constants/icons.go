package constants

// ArrowRightSVG is the glyph drawn on the onboarding "next" button.
// It is stroked in white and rasterized at runtime to the button icon size.
const ArrowRightSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
  <path d="M4 12 L19 12" fill="none" stroke="#FFFFFF" stroke-width="2.5" stroke-linecap="round"/>
  <path d="M13 5 L20 12 L13 19" fill="none" stroke="#FFFFFF" stroke-width="2.5" stroke-linecap="round" stroke-linejoin="round"/>
</svg>`

// SuitcaseSVG is drawn in place of a slide image that could not be loaded.
const SuitcaseSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24" width="24" height="24">
  <rect x="3" y="7" width="18" height="13" rx="2" fill="none" stroke="#9E9E9E" stroke-width="1.5"/>
  <path d="M9 7 L9 4 L15 4 L15 7" fill="none" stroke="#9E9E9E" stroke-width="1.5"/>
  <path d="M3 12 L21 12" fill="none" stroke="#9E9E9E" stroke-width="1.5"/>
</svg>`
