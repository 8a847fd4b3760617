package descriptor

// USB Descriptor Types (USB 2.0 Spec Table 9-5).
const (
	TypeDevice               = 0x01
	TypeConfiguration        = 0x02
	TypeString               = 0x03
	TypeInterface            = 0x04
	TypeEndpoint             = 0x05
	TypeDeviceQualifier      = 0x06
	TypeOtherSpeedConfig     = 0x07
	TypeInterfacePower       = 0x08
	TypeOTG                  = 0x09
	TypeDebug                = 0x0A
	TypeInterfaceAssociation = 0x0B
	TypeBOS                  = 0x0F
	TypeDeviceCapability     = 0x10
	TypeCSInterface          = 0x24 // Class-specific interface
	TypeCSEndpoint           = 0x25 // Class-specific endpoint
)

// USB Class Codes.
const (
	ClassPerInterface = 0x00 // Class defined at interface level
	ClassAudio        = 0x01 // Audio class
	ClassCDC          = 0x02 // Communications Device Class
	ClassHID          = 0x03 // Human Interface Device
	ClassPhysical     = 0x05 // Physical
	ClassImage        = 0x06 // Still Imaging
	ClassPrinter      = 0x07 // Printer
	ClassMassStorage  = 0x08 // Mass Storage
	ClassHub          = 0x09 // Hub
	ClassCDCData      = 0x0A // CDC-Data
	ClassSmartCard    = 0x0B // Smart Card
	ClassContentSec   = 0x0D // Content Security
	ClassVideo        = 0x0E // Video
	ClassHealthcare   = 0x0F // Personal Healthcare
	ClassAudioVideo   = 0x10 // Audio/Video Devices
	ClassBillboard    = 0x11 // Billboard Device Class
	ClassDiagnostic   = 0xDC // Diagnostic Device
	ClassWireless     = 0xE0 // Wireless Controller
	ClassMisc         = 0xEF // Miscellaneous
	ClassAppSpecific  = 0xFE // Application Specific
	ClassVendor       = 0xFF // Vendor Specific
)

// Miscellaneous-class subclass and protocol codes for composite devices
// that group interfaces with IADs (USB IF Interface Association ECN).
const (
	MiscSubclassCommon = 0x02 // Common class
	MiscProtocolIAD    = 0x01 // Interface Association Descriptor
)

// Configuration attribute bits.
const (
	ConfigAttrBusPowered   = 0x80 // Bus-powered (required)
	ConfigAttrSelfPowered  = 0x40 // Self-powered
	ConfigAttrRemoteWakeup = 0x20 // Remote wakeup capable
)

// Endpoint transfer types (bmAttributes bits 1..0).
const (
	EndpointTypeControl     = 0x00 // Control transfer
	EndpointTypeIsochronous = 0x01 // Isochronous transfer
	EndpointTypeBulk        = 0x02 // Bulk transfer
	EndpointTypeInterrupt   = 0x03 // Interrupt transfer
)

// Endpoint direction bits (bEndpointAddress bit 7).
const (
	EndpointDirectionOut = 0x00 // Host to device
	EndpointDirectionIn  = 0x80 // Device to host
)

// Isochronous synchronization types (bmAttributes bits 3..2).
const (
	IsoSyncNone         = 0x00
	IsoSyncAsynchronous = 0x04
	IsoSyncAdaptive     = 0x08
	IsoSyncSynchronous  = 0x0C
)

// LangIDUSEnglish is the language ID for US English.
const LangIDUSEnglish = 0x0409
