// Package xmlcodec stores the persisted file list as the host's XML
// serialization of an IOConnectionInfo array:
//
//	<ArrayOfIOConnectionInfo>
//	  <IOConnectionInfo>
//	    <Path>/home/me/db.kdbx</Path>
//	    <UserName></UserName>
//	    <Password></Password>
//	    <CredProtMode>Obf</CredProtMode>
//	    <CredSaveMode>NoSave</CredSaveMode>
//	  </IOConnectionInfo>
//	</ArrayOfIOConnectionInfo>
//
// Values written by older plugin builds declare encoding="utf-16" because
// they were produced from an in-memory string; those are accepted as is.
package xmlcodec
